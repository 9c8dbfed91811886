package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-ContainerSlots/internal/domain"
	"github.com/m04kA/SMC-ContainerSlots/internal/manifest"
)

// NewManifestCommand slotctl manifest FILE: план загрузки по XLSX манифесту
func NewManifestCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "manifest FILE",
		Short: "Проверить манифест груза",
		Long: `Размещает позиции XLSX манифеста по порядку строк.

Лист должен содержать колонки width, height, length (мм) и необязательную reference.

Examples:
  slotctl manifest cargo.xlsx --occupied 1,2,5,6`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := opts.layout()
			if err != nil {
				return err
			}
			occupied, err := opts.occupiedCells()
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			items, err := manifest.Parse(f, domain.MaxManifestRows)
			if err != nil {
				return err
			}

			plan := manifest.BuildPlan(layout, occupied, items, domain.DefaultPriceTiers)
			return printPlan(cmd, opts.jsonOutput, plan)
		},
	}
}

// NewTemplateCommand slotctl template FILE: пустой манифест с примером строк
func NewTemplateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "template FILE",
		Short: "Создать шаблон манифеста",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Create(args[0])
			if err != nil {
				return err
			}

			if err := manifest.WriteTemplate(f, manifest.SampleItems()); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "template written to %s\n", args[0])
			return nil
		},
	}
}

type planLineOutput struct {
	Line          int     `json:"line"`
	Reference     string  `json:"reference,omitempty"`
	Outcome       string  `json:"outcome"`
	RequiredSlots int     `json:"requiredSlots"`
	Cells         []int   `json:"cells"`
	Price         float64 `json:"price"`
	Error         string  `json:"error,omitempty"`
}

type planOutput struct {
	Lines      []planLineOutput `json:"lines"`
	Placed     int              `json:"placed"`
	Rejected   int              `json:"rejected"`
	Invalid    int              `json:"invalid"`
	Cells      []int            `json:"cells"`
	TotalPrice float64          `json:"totalPrice"`
}

func printPlan(cmd *cobra.Command, asJSON bool, plan manifest.Plan) error {
	out := cmd.OutOrStdout()

	if asJSON {
		lines := make([]planLineOutput, len(plan.Lines))
		for i, l := range plan.Lines {
			cells := l.Cells
			if cells == nil {
				cells = []int{}
			}
			lines[i] = planLineOutput{
				Line:          l.Line,
				Reference:     l.Reference,
				Outcome:       string(l.Outcome),
				RequiredSlots: l.RequiredSlots,
				Cells:         cells,
				Price:         l.Price,
				Error:         l.Err,
			}
		}

		return writeJSON(out, planOutput{
			Lines:      lines,
			Placed:     plan.Placed,
			Rejected:   plan.Rejected,
			Invalid:    plan.Invalid,
			Cells:      plan.Cells,
			TotalPrice: plan.TotalPrice,
		})
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LINE\tREFERENCE\tOUTCOME\tCELLS\tPRICE")
	for _, l := range plan.Lines {
		ref := l.Reference
		if ref == "" {
			ref = "-"
		}
		outcome := string(l.Outcome)
		if l.Err != "" {
			outcome += " (" + l.Err + ")"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.2f\n", l.Line, ref, outcome, formatCells(l.Cells), l.Price)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "placed: %d, rejected: %d, invalid: %d, total: %.2f\n",
		plan.Placed, plan.Rejected, plan.Invalid, plan.TotalPrice)
	return nil
}
