package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	money "github.com/rezonia/qreet/internal/decimal"
	"github.com/rezonia/qreet/internal/receipt"
)

var infoCmd = &cobra.Command{
	Use:   "info [codes...]",
	Short: "Explain the fields of receipt lottery codes",
	Long: `Break a lottery code into its positional fields.

Shows:
  - Version digits and what they mean
  - Mode digit
  - Sale time digits
  - Taxpayer id digits, when present
  - Proof digits and the proof code they pack
  - Amount digits in hellers

Examples:
  qreet info 24017050614017900110063168333761836002264103411300`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0

	for _, arg := range args {
		if err := printCodeInfo(out, strings.TrimSpace(arg)); err != nil {
			failed++
		}
		fmt.Fprintln(out)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d codes failed to decode", failed, len(args))
	}
	return nil
}

func printCodeInfo(w io.Writer, code string) error {
	fmt.Fprintf(w, "Code: %s\n", code)
	fmt.Fprintf(w, "  Length: %d\n", len(code))

	r, err := receipt.Decode(code)
	if err != nil {
		fmt.Fprintf(w, "  Error: %v\n", err)
		return err
	}

	v := r.Version()
	taxWidth := v.TaxID.Width()
	pos := 0
	field := func(n int) string {
		s := code[pos : pos+n]
		pos += n
		return s
	}

	fmt.Fprintf(w, "  Version:   %s  (%s, %s)\n", field(2), v.Kind, describeTaxClass(v.TaxID))
	fmt.Fprintf(w, "  Mode:      %s  (%s)\n", field(1), r.Mode())
	fmt.Fprintf(w, "  Time:      %s  (%s)\n", field(10), r.Timestamp().Format("2006-01-02 15:04"))
	if taxWidth > 0 {
		fmt.Fprintf(w, "  Tax ID:    %s  (%s)\n", field(taxWidth), r.TaxID())
	}
	fmt.Fprintf(w, "  Proof:     %s  (%s)\n", field(receipt.ProofLength), r.Proof().Hex())
	fmt.Fprintf(w, "  Amount:    %s  (%s CZK)\n", code[pos:], money.Format(r.Amount()))
	return nil
}

func describeTaxClass(c receipt.TaxIDClass) string {
	if c.Width() == 0 {
		return "no tax id"
	}
	return fmt.Sprintf("%d digit tax id", c.Width())
}
