// Package pipeline runs document conversion sessions: extract, select,
// mask, convert, unmask, repackage, clean up.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/fwojciec/cjkdoc"
	"github.com/fwojciec/cjkdoc/fs"
	"github.com/fwojciec/cjkdoc/zip"
)

// Pipeline converts zip-packaged documents. A Pipeline holds no per-session
// state and may run many sessions concurrently.
type Pipeline struct {
	// Converter transforms member text. Required.
	Converter cjkdoc.Converter

	// Decoder turns member bytes into text. Nil decodes strictly as UTF-8.
	Decoder cjkdoc.Decoder

	// Validator, when set, reports members that stop being well-formed XML
	// after conversion. It never changes what is written.
	Validator cjkdoc.XMLValidator

	// Extractor materializes source archives.
	Extractor zip.Extractor

	// TempRoot is the parent of every working tree. Empty means fs.TempRoot().
	TempRoot string

	Logger *slog.Logger
}

// Request describes one conversion session.
type Request struct {
	Input       string
	Output      string
	Format      cjkdoc.Format
	Punctuation bool
	KeepFont    bool
}

// Convert runs one session. Every failure, including a panic raised by the
// converter, is reported through the returned Result; the working tree is
// removed on every path. Convert panics if p.Converter is nil.
func (p *Pipeline) Convert(ctx context.Context, req Request) (result *cjkdoc.Result) {
	if p.Converter == nil {
		panic("pipeline: Converter is required")
	}

	begin := time.Now()
	result = &cjkdoc.Result{
		Format: req.Format,
		Input:  req.Input,
		Output: req.Output,
	}
	defer func() {
		if r := recover(); r != nil {
			p.fail(result, cjkdoc.Errorf(cjkdoc.EINTERNAL, "conversion failed: %v", r))
		}
		result.Duration = time.Since(begin)
		p.logger().Debug("session finished",
			"input", req.Input,
			"format", req.Format,
			"ok", result.OK,
			"fragments", result.Fragments(),
			"duration", result.Duration,
		)
	}()

	if err := ctx.Err(); err != nil {
		p.fail(result, err)
		return result
	}

	if !req.Format.Valid() {
		p.fail(result, cjkdoc.Errorf(cjkdoc.EUNSUPPORTED, "unsupported or invalid format: %s", req.Format))
		return result
	}

	ws, err := fs.NewWorkspace(p.tempRoot(), string(req.Format)+"_temp_")
	if err != nil {
		p.fail(result, err)
		return result
	}
	defer func() {
		if err := ws.Remove(); err != nil {
			result.Warnings = append(result.Warnings, cjkdoc.ErrorMessage(err))
			p.logger().Warn("cleanup incomplete", "dir", ws.Dir(), "err", err)
		}
	}()

	if err := p.run(req, ws, result); err != nil {
		p.fail(result, err)
		return result
	}

	result.OK = true
	result.Message = fmt.Sprintf("converted %d fragment(s) in %s document", result.Fragments(), req.Format)
	return result
}

// run performs the session stages inside an existing working tree.
func (p *Pipeline) run(req Request, ws *fs.Workspace, result *cjkdoc.Result) error {
	if _, err := p.Extractor.Extract(req.Input, ws.Dir()); err != nil {
		return err
	}

	targets, err := fs.Resolve(req.Format, ws.Dir())
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return cjkdoc.Errorf(cjkdoc.EUNSUPPORTED, "unsupported or invalid format: %s", req.Format)
	}

	for _, member := range targets {
		path, err := ws.Join(member)
		if err != nil {
			return err
		}
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			p.logger().Debug("member not present", "member", member)
			continue
		}

		if err := p.convertFile(req, member, path, result); err != nil {
			return memberError(member, err)
		}
		result.Converted = append(result.Converted, member)
	}

	if len(result.Converted) == 0 {
		return cjkdoc.Errorf(cjkdoc.ENOFRAGMENTS, "no valid XML fragments were found; is the format '%s' correct?", req.Format)
	}

	if err := fs.RemoveFile(req.Output); err != nil {
		return cjkdoc.Errorf(cjkdoc.EARCHIVEWRITE, "failed to remove existing output %s: %v", req.Output, err)
	}

	if req.Format == cjkdoc.FormatEPUB {
		return zip.WriteEPUB(ws.Dir(), req.Output)
	}
	return zip.WriteGeneric(ws.Dir(), req.Output)
}

// convertFile converts one member in place.
func (p *Pipeline) convertFile(req Request, member, path string, result *cjkdoc.Result) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	decoded, err := p.decode(data)
	if err != nil {
		return err
	}
	if decoded.Lossy {
		result.Lossy = append(result.Lossy, member)
		p.logger().Warn("member is not valid UTF-8, decoded lossily",
			"member", member,
			"charset", decoded.Charset,
		)
	}

	var pattern *regexp.Regexp
	if req.KeepFont {
		pattern = cjkdoc.FontPattern(req.Format)
	}

	converted, err := convertMember(decoded.Text, p.Converter, req.Punctuation, pattern)
	if err != nil {
		return err
	}

	if p.Validator != nil && p.Validator.Validate(decoded.Text) == nil {
		if err := p.Validator.Validate(converted); err != nil {
			result.Malformed = append(result.Malformed, member)
			p.logger().Warn("member is no longer well-formed XML after conversion",
				"member", member,
				"err", cjkdoc.ErrorMessage(err),
			)
		}
	}

	out := []byte(converted)
	if decoded.BOM {
		out = append(append([]byte{}, utf8BOM...), out...)
	}
	return os.WriteFile(path, out, 0644)
}

// convertMember passes one member's text through the converter. With a
// pattern, font names matched by it are masked before conversion and
// restored afterwards.
func convertMember(text string, converter cjkdoc.Converter, punctuation bool, pattern *regexp.Regexp) (string, error) {
	masked, fonts := cjkdoc.Mask(text, pattern)

	converted, err := converter.Convert(masked, punctuation)
	if err != nil {
		return "", err
	}

	return fonts.Unmask(converted), nil
}

// memberError names the member a conversion failed on, keeping the code of
// application errors.
func memberError(member string, err error) error {
	var e *cjkdoc.Error
	if errors.As(err, &e) {
		return cjkdoc.Errorf(e.Code, "failed to convert %s: %s", member, e.Message)
	}
	return fmt.Errorf("failed to convert %s: %w", member, err)
}

func (p *Pipeline) decode(data []byte) (*cjkdoc.DecodeResult, error) {
	if p.Decoder != nil {
		return p.Decoder.Decode(data)
	}
	return strictUTF8{}.Decode(data)
}

func (p *Pipeline) fail(result *cjkdoc.Result, err error) {
	result.OK = false
	result.Err = err
	result.Message = fmt.Sprintf("conversion failed: %s", cjkdoc.ErrorMessage(err))
	p.logger().Error("conversion failed",
		"input", result.Input,
		"format", result.Format,
		"code", cjkdoc.ErrorCode(err),
		"err", err,
	)
}

func (p *Pipeline) tempRoot() string {
	if p.TempRoot != "" {
		return filepath.Clean(p.TempRoot)
	}
	return fs.TempRoot()
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.New(slog.DiscardHandler)
}
