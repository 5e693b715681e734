package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rezonia/qreet/internal/model"
	"github.com/rezonia/qreet/internal/receipt"
	"github.com/rezonia/qreet/internal/server"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [codes...]",
	Short: "Decode receipt lottery codes",
	Long: `Decode one or more lottery codes and print the receipt fields.

Each code is checked for:
  - Length (34 to 52 digits) and digits only
  - Version agreeing with the proof kind and taxpayer id length
  - Proof code groups fitting their hex width
  - Sale time and amount

The command fails when any code is invalid.

Examples:
  qreet decode 24017050614017900110063168333761836002264103411300
  qreet decode 2101705061401168333761836002264103411300 -f table`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	results := make([]*DecodeResult, 0, len(args))
	failed := 0

	for _, arg := range args {
		result := decodeCode(arg)
		if result.Error != "" {
			failed++
			log.Debug().Str("code", result.Input).Str("kind", result.Kind).Msg("decode failed")
		}
		results = append(results, result)
	}

	out := cmd.OutOrStdout()
	if outputFormat == "json" {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(results); err != nil {
			return err
		}
	} else {
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "CODE\tVERSION\tKIND\tPROOF\tTAX ID\tMODE\tTIME\tAMOUNT")
		for _, r := range results {
			if r.Receipt == nil {
				fmt.Fprintf(tw, "%s\tERROR: %s\t\t\t\t\t\t\n", r.Input, r.Error)
				continue
			}
			v := r.Receipt
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				v.Code, v.Version, v.Kind, v.Proof, v.TaxID, v.Mode, v.Time, v.Amount)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d codes failed to decode", failed, len(args))
	}
	return nil
}

func decodeCode(input string) *DecodeResult {
	result := &DecodeResult{Input: strings.TrimSpace(input)}

	r, err := receipt.Decode(result.Input)
	if err != nil {
		result.Error = err.Error()
		result.Kind = model.KindName(err)
		return result
	}

	view := server.NewReceiptResponse(r)
	result.Receipt = &view
	return result
}

// DecodeResult holds the outcome of decoding a single code.
type DecodeResult struct {
	Input   string                  `json:"input"`
	Receipt *server.ReceiptResponse `json:"receipt,omitempty"`
	Error   string                  `json:"error,omitempty"`
	Kind    string                  `json:"kind,omitempty"`
}
