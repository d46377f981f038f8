package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tween/anim"
)

// AnimatorInfo is one row of the animator browser.
type AnimatorInfo struct {
	Handle   anim.Handle
	Kind     anim.Kind
	State    anim.State
	Repeat   anim.RepeatMode
	Reversed bool
	Progress float64
	Duration float64
}

// AnimatorBrowser lists live animators in a sortable, filterable table.
type AnimatorBrowser struct {
	rows          []AnimatorInfo
	selected      anim.Handle
	filterText    string
	sortColumn    int
	sortAscending bool
	rowsPerPage   int
	currentPage   int
}

func NewAnimatorBrowser(rowsPerPage int) *AnimatorBrowser {
	return &AnimatorBrowser{
		sortAscending: true,
		rowsPerPage:   rowsPerPage,
	}
}

func (ab *AnimatorBrowser) Render(registry *anim.Registry) {
	if !imgui.BeginV("Animators", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ab.collect(registry)

	imgui.InputTextWithHint("##search", "Search...", &ab.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		ab.filterText = ""
	}

	rows := ab.filtered()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("AnimatorTable", 5, tableFlags, imgui.NewVec2(0, 300), 0) {
		imgui.TableSetupColumn("Handle")
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("State")
		imgui.TableSetupColumn("Repeat")
		imgui.TableSetupColumn("Progress")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			ab.sortColumn = int(spec.ColumnIndex())
			ab.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortSpecs.SetSpecsDirty(false)
		}
		sortAnimators(rows, ab.sortColumn, ab.sortAscending)

		start, end := page(len(rows), ab.currentPage, ab.rowsPerPage)
		for _, row := range rows[start:end] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			if imgui.SelectableBoolV(handleLabel(row.Handle), ab.selected == row.Handle, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				ab.selected = row.Handle
			}

			imgui.TableNextColumn()
			imgui.Text(row.Kind.String())

			imgui.TableNextColumn()
			imgui.Text(row.State.String())

			imgui.TableNextColumn()
			repeat := row.Repeat.String()
			if row.Reversed {
				repeat += " (rev)"
			}
			imgui.Text(repeat)

			imgui.TableNextColumn()
			imgui.ProgressBarV(float32(row.Progress), imgui.NewVec2(-1, 0), fmt.Sprintf("%.2f", row.Progress))
		}

		imgui.EndTable()
	}

	if len(rows) > ab.rowsPerPage {
		totalPages := (len(rows) + ab.rowsPerPage - 1) / ab.rowsPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d animators)", ab.currentPage+1, totalPages, len(rows)))
		imgui.SameLine()
		if imgui.Button("Prev") && ab.currentPage > 0 {
			ab.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && ab.currentPage < totalPages-1 {
			ab.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d animators", len(rows)))
	}

	if a := registry.Get(ab.selected); a != nil {
		imgui.Separator()
		ab.renderSelected(a)
	}

	imgui.End()
}

func (ab *AnimatorBrowser) renderSelected(a *anim.Animator) {
	imgui.Text(fmt.Sprintf("Selected: %s", handleLabel(ab.selected)))
	imgui.Text(fmt.Sprintf("Duration: %.3fs  Delay: %.3fs", a.Duration(), a.Delay()))
	imgui.Text(fmt.Sprintf("Easing: %s", a.Curve()))
	if started, ok := a.StartedAt(); ok {
		imgui.Text(fmt.Sprintf("Cycle started at: %.3f", started))
	}
	if a.Kind() == anim.KindFloat {
		from, to := a.Range()
		imgui.Text(fmt.Sprintf("Range: %g -> %g", from, to))
	} else {
		from, to := a.VectorRange()
		imgui.Text(fmt.Sprintf("Range: %v -> %v", from, to))
	}
	if imgui.Button("Cancel") {
		a.Cancel()
	}
}

// Selected returns the handle of the highlighted row.
func (ab *AnimatorBrowser) Selected() anim.Handle {
	return ab.selected
}

func (ab *AnimatorBrowser) collect(registry *anim.Registry) {
	ab.rows = collectAnimators(ab.rows[:0], registry)
}

func (ab *AnimatorBrowser) filtered() []AnimatorInfo {
	return filterAnimators(ab.rows, ab.filterText)
}

func collectAnimators(dst []AnimatorInfo, registry *anim.Registry) []AnimatorInfo {
	for h, a := range registry.All() {
		dst = append(dst, AnimatorInfo{
			Handle:   h,
			Kind:     a.Kind(),
			State:    a.State(),
			Repeat:   a.Repeat(),
			Reversed: a.Reversed(),
			Progress: a.Progress(),
			Duration: a.Duration(),
		})
	}
	return dst
}

func filterAnimators(rows []AnimatorInfo, text string) []AnimatorInfo {
	if text == "" {
		return rows
	}

	needle := strings.ToLower(text)
	filtered := make([]AnimatorInfo, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(handleLabel(row.Handle), needle) ||
			strings.Contains(row.Kind.String(), needle) ||
			strings.Contains(row.State.String(), needle) ||
			strings.Contains(row.Repeat.String(), needle) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

func sortAnimators(rows []AnimatorInfo, column int, ascending bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if !ascending {
			a, b = b, a
		}

		switch column {
		case 1:
			return a.Kind < b.Kind
		case 2:
			return a.State < b.State
		case 3:
			return a.Repeat < b.Repeat
		case 4:
			return a.Progress < b.Progress
		default:
			return a.Handle.Index() < b.Handle.Index()
		}
	})
}

func page(total, current, size int) (int, int) {
	if size <= 0 {
		return 0, total
	}
	start := min(current*size, total)
	return start, min(start+size, total)
}

func handleLabel(h anim.Handle) string {
	return fmt.Sprintf("%d:%d", h.Index(), h.Generation())
}
