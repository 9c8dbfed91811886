// Package cli команды офлайн-утилиты slotctl: проверка груза, подбор ячеек
// и разбор манифеста без базы данных.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-ContainerSlots/internal/allocator"
	"github.com/m04kA/SMC-ContainerSlots/internal/domain"
)

// Version задаётся при сборке через ldflags
var Version = "dev"

// options общие флаги всех подкоманд
type options struct {
	jsonOutput bool
	rows       int
	cols       int
	occupied   string
}

// layout сетка с размерами из флагов и стандартной геометрией
func (o *options) layout() (allocator.Layout, error) {
	return allocator.DefaultLayout().WithGrid(o.rows, o.cols)
}

// occupiedCells разбирает --occupied вида "1,2,5,6"
func (o *options) occupiedCells() ([]int, error) {
	return parseCellList(o.occupied)
}

// NewRootCommand создает корневую команду со всеми подкомандами
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "slotctl",
		Short: "Подбор ячеек контейнера без сервиса",
		Long: `slotctl считает размещение груза в сетке контейнера локально.

Занятые ячейки передаются флагом --occupied, размер сетки флагами --rows и --cols.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
	}

	rootCmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Вывод в JSON")
	rootCmd.PersistentFlags().IntVar(&opts.rows, "rows", domain.DefaultGridRows, "Количество рядов сетки")
	rootCmd.PersistentFlags().IntVar(&opts.cols, "cols", domain.DefaultGridCols, "Количество столбцов сетки")
	rootCmd.PersistentFlags().StringVar(&opts.occupied, "occupied", "", "Занятые ячейки через запятую, например 1,2,5,6")

	rootCmd.AddCommand(NewFitCommand(opts))
	rootCmd.AddCommand(NewPlaceCommand(opts))
	rootCmd.AddCommand(NewPalletsCommand(opts))
	rootCmd.AddCommand(NewManifestCommand(opts))
	rootCmd.AddCommand(NewTemplateCommand())

	return rootCmd
}

// Execute запускает команду и завершает процесс с кодом 1 при ошибке
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseCellList(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []int{}, nil
	}

	parts := strings.Split(s, ",")
	cells := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid cell id %q", p)
		}
		cells = append(cells, id)
	}

	return cells, nil
}

func formatCells(cells []int) string {
	if len(cells) == 0 {
		return "-"
	}

	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ",")
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
