// Command payslip-glossary builds a glossary of earning-description
// abbreviations from a library of extracted payslip records.
//
// Page one of a payslip abbreviates line-item descriptions severely, while
// page two spells them out. Convert payslips to JSON with the payslip
// command, then run:
//
//	payslip-glossary PAYSLIP.json ...
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/payrollkit/payslip/internal/glossary"
	"github.com/payrollkit/payslip/internal/payslip"
)

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s PAYSLIP.json ...\n", os.Args[0])
		os.Exit(2)
	}

	records := make([]*payslip.Record, 0, len(os.Args)-1)
	for _, path := range os.Args[1:] {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("Error: %s: %v", path, err)
		}
		var record payslip.Record
		if err := json.Unmarshal(data, &record); err != nil {
			log.Fatalf("Error: %s: %v", path, err)
		}
		records = append(records, &record)
	}

	entries, err := glossary.Build(records)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	os.Stdout.WriteString(glossary.Format(entries))
}
