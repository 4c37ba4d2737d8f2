/*
GoFMHURL
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package fmhurl

import (
	"github.com/projectdiscovery/utils/errkit"
	"github.com/slicingmelon/gofmhurl/core/urlparser"
)

var (
	// ErrKindInvalidFmhURL: the input did not split into five positional segments.
	ErrKindInvalidFmhURL = errkit.NewPrimitiveErrKind(
		"error-fmhurl-invalid-fmh-url",
		"invalid FMH-URL",
		nil,
	)

	// ErrKindReconstruction: the URL rebuilt from FMH segments was rejected by the parser.
	ErrKindReconstruction = errkit.NewPrimitiveErrKind(
		"error-fmhurl-reconstruction",
		"reconstructed URL failed to parse",
		nil,
	)

	// ErrKindParse is urlparser.ErrKindInvalidURL, re-exported for ConvertString callers.
	ErrKindParse = urlparser.ErrKindInvalidURL
)

func newInvalidFmhURLError(fmhURL string) error {
	return errkit.New("invalid FMH-URL: %s", fmhURL).
		SetKind(ErrKindInvalidFmhURL).
		Build()
}

func newReconstructionError(reconstructed string, cause error) error {
	errx := errkit.FromError(cause)
	errx.ResetKind().SetKind(ErrKindReconstruction)
	return errkit.WithMessagef(errx.Build(), "reconstructed URL %q is not valid", reconstructed)
}

func IsInvalidFmhURL(err error) bool {
	return err != nil && errkit.IsKind(err, ErrKindInvalidFmhURL)
}

func IsReconstructionError(err error) bool {
	return err != nil && errkit.IsKind(err, ErrKindReconstruction)
}

func IsParseError(err error) bool {
	return err != nil && errkit.IsKind(err, ErrKindParse)
}
