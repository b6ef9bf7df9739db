// Command payslip converts WA Department of Health payslip PDFs into
// structured JSON records.
//
//	payslip PAYSLIP            # print JSON to stdout
//	payslip -d [PAYSLIP ...]   # create PAYSLIP.json for each pdf
//
// The exit status is non-zero if any input fails fatally; total-mismatch
// warnings go to stderr and do not affect the exit status.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/payrollkit/payslip/internal/config"
	"github.com/payrollkit/payslip/internal/payslip"
	"github.com/payrollkit/payslip/internal/pdf"
)

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Printf("Error: %v", err)
		os.Exit(2)
	}

	os.Exit(run(cfg))
}

func run(cfg *config.Config) int {
	status := 0
	for _, input := range cfg.Inputs {
		if err := processOne(cfg, input); err != nil {
			log.Printf("Error: %s: %v", input, err)
			status = 1
		}
	}
	return status
}

func processOne(cfg *config.Config, input string) error {
	data, err := readLimited(input, cfg.MaxFileSize)
	if err != nil {
		return err
	}

	if cfg.Preflight {
		if err := pdf.Preflight(data); err != nil {
			return err
		}
	}

	record, err := payslip.Extract(data)
	if err != nil {
		return err
	}

	for _, warning := range record.Warnings {
		log.Printf("Warning: %s: %s", input, warning)
	}

	encoded, err := payslip.Encode(record)
	if err != nil {
		return err
	}
	encoded = append(encoded, '\n')

	if !cfg.WriteFiles {
		_, err := os.Stdout.Write(encoded)
		return err
	}
	return os.WriteFile(outputPath(input), encoded, 0o644)
}

// readLimited reads a payslip file, refusing anything over the configured
// size cap.
func readLimited(path string, maxSize int64) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}
	if info.Size() > maxSize {
		return nil, fmt.Errorf("file too large: %d bytes (max: %d bytes)", info.Size(), maxSize)
	}
	return os.ReadFile(path)
}

// outputPath derives the .json sibling of an input path.
func outputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".json"
}
