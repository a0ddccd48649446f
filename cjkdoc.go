// Package cjkdoc converts the text of zip-packaged documents (Office Open
// XML, OpenDocument and EPUB) between Chinese script variants.
//
// A conversion session extracts the archive into a private working tree,
// selects the XML members that carry user-visible text, passes them through
// a Converter (optionally shielding font names from it) and repackages a new
// archive that is valid for the source format.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, opencc/, etree/).
package cjkdoc
