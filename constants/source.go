package constants

import "strings"

// SourceType classifies what kind of input an upload carries.
type SourceType string

const (
	SourceText         SourceType = "text"
	SourcePDF          SourceType = "pdf"
	SourceImageReceipt SourceType = "image_receipt"
	SourceImageList    SourceType = "image_list"
	SourceUnknown      SourceType = "unknown"
)

// SourceTypes lists every valid uploads.source_type value.
var SourceTypes = []string{
	string(SourceText),
	string(SourcePDF),
	string(SourceImageReceipt),
	string(SourceImageList),
	string(SourceUnknown),
}

// ParseSourceType maps a raw hint to a SourceType, defaulting to SourceUnknown.
func ParseSourceType(raw string) SourceType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(SourceText), "txt", "plain":
		return SourceText
	case string(SourcePDF):
		return SourcePDF
	case string(SourceImageReceipt), "receipt":
		return SourceImageReceipt
	case string(SourceImageList), "list", "grocery_list":
		return SourceImageList
	default:
		return SourceUnknown
	}
}

// SourceTypeForContentType infers a SourceType from a MIME content type when the
// client did not supply a hint. Images default to the receipt path.
func SourceTypeForContentType(contentType string) SourceType {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	switch {
	case strings.HasPrefix(ct, "text/"):
		return SourceText
	case ct == "application/pdf":
		return SourcePDF
	case strings.HasPrefix(ct, "image/"):
		return SourceImageReceipt
	default:
		return SourceUnknown
	}
}
