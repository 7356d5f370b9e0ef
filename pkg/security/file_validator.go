package security

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxResumeBytes is the upper bound for an uploaded resume, inclusive.
const MaxResumeBytes int64 = 5 << 20

const (
	MIMEPDF  = "application/pdf"
	MIMEDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// sniffLen is how much of an upload is read for content detection. DOCX
// detection needs the first zip entries, which sit well inside this.
const sniffLen = 3072

var (
	ErrEmptyUpload      = errors.New("no file selected")
	ErrResumeTooLarge   = fmt.Errorf("file exceeds %d MB", MaxResumeBytes>>20)
	ErrResumeType       = errors.New("content type must be PDF or DOCX")
	ErrResumeMismatched = errors.New("file content does not match declared type")
)

var allowedResumeTypes = map[string]string{
	MIMEPDF:  ".pdf",
	MIMEDOCX: ".docx",
}

// NormalizeContentType strips parameters and lower-cases a declared type.
func NormalizeContentType(declared string) string {
	mediaType, _, err := mime.ParseMediaType(declared)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(declared))
	}
	return mediaType
}

// ValidateResumeHeader checks what the client declared: presence, size and
// content type. It returns the normalized content type.
func ValidateResumeHeader(filename, declaredType string, size int64) (string, error) {
	if strings.TrimSpace(filename) == "" || size <= 0 {
		return "", ErrEmptyUpload
	}
	if size > MaxResumeBytes {
		return "", ErrResumeTooLarge
	}
	contentType := NormalizeContentType(declaredType)
	if _, ok := allowedResumeTypes[contentType]; !ok {
		return "", ErrResumeType
	}
	return contentType, nil
}

// SniffResume verifies that head looks like the declared type.
func SniffResume(declaredType string, head []byte) error {
	detected := mimetype.Detect(head)
	switch declaredType {
	case MIMEPDF:
		if detected.Is(MIMEPDF) {
			return nil
		}
	case MIMEDOCX:
		// Word files are zip containers; short heads are often only recognised
		// as the parent zip type.
		for m := detected; m != nil; m = m.Parent() {
			if m.Is(MIMEDOCX) || m.Is("application/zip") {
				return nil
			}
		}
	default:
		return ErrResumeType
	}
	return ErrResumeMismatched
}

// ReadHead reads up to the detection window from r and returns it together
// with a reader replaying the full stream.
func ReadHead(r io.Reader) ([]byte, io.Reader, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, nil, err
	}
	head = head[:n]
	return head, io.MultiReader(bytes.NewReader(head), r), nil
}

// ResumeExtension picks the stored extension for a validated content type,
// falling back to the client's file name.
func ResumeExtension(contentType, filename string) string {
	if ext, ok := allowedResumeTypes[contentType]; ok {
		return ext
	}
	return strings.ToLower(filepath.Ext(filename))
}

// ResumeRejectionMessage returns the user-facing text for a resume
// validation error, or "" when err is not one.
func ResumeRejectionMessage(err error) string {
	switch {
	case errors.Is(err, ErrEmptyUpload):
		return "Please select a file."
	case errors.Is(err, ErrResumeTooLarge):
		return fmt.Sprintf("File is too large. The maximum size is %d MB.", MaxResumeBytes>>20)
	case errors.Is(err, ErrResumeType), errors.Is(err, ErrResumeMismatched):
		return "Only PDF and DOCX files are allowed."
	}
	return ""
}
