package pdf

import (
	"bytes"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Preflight checks that data is a structurally sound PDF before the
// extraction pipeline is run against it. Validation is relaxed: the payslip
// generator emits slightly sloppy containers that strict validation rejects.
// A failure is reported as *MalformedDocumentError.
func Preflight(data []byte) error {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(bytes.NewReader(data), conf)
	if err != nil {
		return &MalformedDocumentError{Op: "preflight", Err: err}
	}

	if err := ctx.EnsurePageCount(); err != nil {
		return &MalformedDocumentError{Op: "preflight page count", Err: err}
	}

	return nil
}
