package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-ContainerSlots/internal/allocator"
	"github.com/m04kA/SMC-ContainerSlots/internal/domain"
)

// placementOutput результат fit/place/pallets для --json
type placementOutput struct {
	Outcome       allocator.Outcome `json:"outcome"`
	Fits          bool              `json:"fits"`
	BlockWidth    int               `json:"blockWidth"`
	BlockLength   int               `json:"blockLength"`
	RequiredSlots int               `json:"requiredSlots"`
	Cells         []int             `json:"cells"`
	TotalPrice    float64           `json:"totalPrice"`
}

func newPlacementOutput(p allocator.Placement) placementOutput {
	cells := p.Cells
	if cells == nil {
		cells = []int{}
	}

	return placementOutput{
		Outcome:       p.Outcome(),
		Fits:          p.Fits,
		BlockWidth:    p.BlockWidth,
		BlockLength:   p.BlockLength,
		RequiredSlots: p.RequiredSlots,
		Cells:         cells,
		TotalPrice:    domain.TotalPrice(domain.DefaultPriceTiers, cells),
	}
}

// cargoFlags габариты груза в мм
type cargoFlags struct {
	width  float64
	height float64
	length float64
}

func (f *cargoFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.width, "width", 0, "Ширина груза, мм")
	cmd.Flags().Float64Var(&f.height, "height", 0, "Высота груза, мм")
	cmd.Flags().Float64Var(&f.length, "length", 0, "Длина груза, мм")
}

func (f *cargoFlags) cargo() (domain.Dimensions, error) {
	d := domain.Dimensions{Width: f.width, Height: f.height, Length: f.length}
	if !d.IsValidInput() {
		return domain.Dimensions{}, fmt.Errorf("dimensions must be finite and non-negative")
	}
	return d, nil
}

// NewFitCommand slotctl fit: помещается ли груз и сколько ячеек нужно
func NewFitCommand(opts *options) *cobra.Command {
	flags := &cargoFlags{}

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Проверить габариты груза",
		Long: `Проверяет, что груз помещается в контейнер, и считает форму блока.

Examples:
  slotctl fit --width 1300 --height 1000 --length 1200`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := opts.layout()
			if err != nil {
				return err
			}
			cargo, err := flags.cargo()
			if err != nil {
				return err
			}

			p := allocator.Placement{Fits: layout.FitsInContainer(cargo)}
			if p.Fits {
				p.BlockWidth, p.BlockLength = layout.BlockShape(cargo)
				p.RequiredSlots = layout.RequiredSlotCount(cargo)
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return writeJSON(out, map[string]interface{}{
					"fits":          p.Fits,
					"blockWidth":    p.BlockWidth,
					"blockLength":   p.BlockLength,
					"requiredSlots": p.RequiredSlots,
				})
			}

			if !p.Fits {
				fmt.Fprintln(out, "does not fit: cargo exceeds container envelope")
				return nil
			}
			fmt.Fprintf(out, "fits: %dx%d block, %d slots\n", p.BlockWidth, p.BlockLength, p.RequiredSlots)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// NewPlaceCommand slotctl place: подбор блока под груз
func NewPlaceCommand(opts *options) *cobra.Command {
	flags := &cargoFlags{}

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Подобрать блок ячеек под груз",
		Long: `Ищет первый свободный прямоугольный блок под груз.

Examples:
  slotctl place --width 1300 --height 1000 --length 1200 --occupied 1,2,5,6
  slotctl place --rows 2 --cols 10 --width 2500 --length 1000 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := opts.layout()
			if err != nil {
				return err
			}
			occupied, err := opts.occupiedCells()
			if err != nil {
				return err
			}
			cargo, err := flags.cargo()
			if err != nil {
				return err
			}

			return printPlacement(cmd.OutOrStdout(), opts.jsonOutput, layout.Place(occupied, cargo))
		},
	}

	flags.register(cmd)
	return cmd
}

// NewPalletsCommand slotctl pallets: первые свободные ячейки под N паллет
func NewPalletsCommand(opts *options) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "pallets",
		Short: "Подобрать ячейки под стандартные паллеты",
		Long: `Берёт первые свободные ячейки по порядку, одна паллета на ячейку.

Examples:
  slotctl pallets --count 3 --occupied 1,2,5,6`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 || count > domain.MaxPalletsPerReservation {
				return fmt.Errorf("count must be in 1..%d", domain.MaxPalletsPerReservation)
			}

			layout, err := opts.layout()
			if err != nil {
				return err
			}
			occupied, err := opts.occupiedCells()
			if err != nil {
				return err
			}

			return printPlacement(cmd.OutOrStdout(), opts.jsonOutput, layout.PlacePallets(occupied, count))
		},
	}

	cmd.Flags().IntVar(&count, "count", 1, "Количество паллет")
	return cmd
}

func printPlacement(w io.Writer, asJSON bool, p allocator.Placement) error {
	out := newPlacementOutput(p)
	if asJSON {
		return writeJSON(w, out)
	}

	switch out.Outcome {
	case allocator.OutcomeDoesNotFit:
		fmt.Fprintln(w, "does not fit: cargo exceeds container envelope")
	case allocator.OutcomeNoBlock:
		fmt.Fprintf(w, "no free block for %dx%d (%d slots)\n", out.BlockWidth, out.BlockLength, out.RequiredSlots)
	default:
		fmt.Fprintf(w, "cells: %s\nprice: %.2f\n", formatCells(out.Cells), out.TotalPrice)
	}
	return nil
}
