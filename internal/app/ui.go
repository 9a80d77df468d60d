package app

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"yashubustudio/decider/decider"
)

// gui implements decider.UserInterface over one Fyne window. The session
// runs on its own goroutine; every step builds its dialog on the UI
// thread via fyne.Do and blocks on a channel until the user confirms or
// cancels.
type gui struct {
	w      fyne.Window
	cfg    decider.Config
	logger logPrinter

	// Elicitation-order data captured for the export dialogs; the
	// ranked result loses the positional correspondence the CSV needs.
	lastAlts    []decider.Alternative
	lastFactors []decider.Factor
	lastRatings [][]float64
}

type logPrinter interface {
	Printf(format string, v ...any)
}

func (g *gui) ShowIntroduction() {
	done := make(chan struct{})
	fyne.Do(func() {
		msg := widget.NewLabel("このウィザードは代替案を要因ごとに比較し、推奨案を算出します。\n\n" +
			"1. 代替案（選択肢）を入力\n" +
			"2. 要因（評価基準）を入力\n" +
			"3. 要因の重要度を設定\n" +
			"4. 代替案を要因ごとに評価\n\n" +
			"数値はすべて 0〜1000 の範囲で検証されます。")
		msg.Wrapping = fyne.TextWrapWord
		d := dialog.NewCustom("意思決定支援", "開始", msg, g.w)
		d.SetOnClosed(func() { close(done) })
		d.Resize(fyne.NewSize(420, 280))
		d.Show()
	})
	<-done
}

func (g *gui) EditNameList(prompt decider.ListPrompt, list *decider.NameList) bool {
	done := make(chan bool, 1)
	fyne.Do(func() {
		items := list.Items()
		selected := -1

		lst := widget.NewList(
			func() int { return len(items) },
			func() fyne.CanvasObject { return widget.NewLabel("") },
			func(id widget.ListItemID, obj fyne.CanvasObject) {
				obj.(*widget.Label).SetText(items[id])
			},
		)
		lst.OnSelected = func(id widget.ListItemID) { selected = id }
		lst.OnUnselected = func(widget.ListItemID) { selected = -1 }
		refresh := func() {
			items = list.Items()
			lst.Refresh()
		}

		entry := widget.NewEntry()
		entry.SetPlaceHolder(prompt.Hint)
		add := func() {
			if list.Add(entry.Text) {
				entry.SetText("")
				refresh()
			}
		}
		entry.OnSubmitted = func(string) { add() }
		addBtn := widget.NewButtonWithIcon("追加", theme.ContentAddIcon(), add)
		removeBtn := widget.NewButtonWithIcon("削除", theme.ContentRemoveIcon(), func() {
			if selected >= 0 && list.Remove(selected) {
				lst.UnselectAll()
				selected = -1
				refresh()
			}
		})

		top := container.NewBorder(nil, nil, widget.NewLabel(prompt.FieldLabel), addBtn, entry)
		content := container.NewBorder(top, removeBtn, nil, nil, lst)

		// Own buttons so a rejected OK keeps the dialog open instead
		// of closing and reopening it.
		d := dialog.NewCustomWithoutButtons(prompt.Title, content, g.w)
		okBtn := widget.NewButton("OK", func() {
			if !list.CanConfirm() {
				dialog.ShowInformation("項目が必要です", "1件以上の項目を追加してください。", g.w)
				return
			}
			d.Hide()
			done <- true
		})
		okBtn.Importance = widget.HighImportance
		cancelBtn := widget.NewButton("キャンセル", func() {
			d.Hide()
			done <- false
		})
		d.SetButtons([]fyne.CanvasObject{cancelBtn, okBtn})
		d.Resize(fyne.NewSize(520, 420))
		d.Show()
	})
	return <-done
}

func (g *gui) EditImportances(factors []decider.Factor, vec *decider.ImportanceVector) bool {
	done := make(chan bool, 1)
	fyne.Do(func() {
		standard := vec.Standard()
		baseline := vec.BaselineIndex()

		entries := make([]*widget.Entry, len(factors))
		items := make([]*widget.FormItem, 0, len(factors))
		for i, f := range factors {
			e := widget.NewEntry()
			e.SetText(strconv.Itoa(vec.Get(i)))
			if i == baseline {
				e.Disable()
			}
			entries[i] = e
			items = append(items, widget.NewFormItem(f.Name, e))
		}

		lead := widget.NewLabel(fmt.Sprintf("基準: %s = %d\n他の要因は基準との相対値で調整してください。",
			factors[baseline].Name, standard))
		lead.Wrapping = fyne.TextWrapWord
		content := container.NewBorder(lead, nil, nil, nil,
			container.NewVScroll(&widget.Form{Items: items}))

		d := dialog.NewCustomConfirm("要因の重要度", "OK", "キャンセル", content, func(ok bool) {
			if !ok {
				done <- false
				return
			}
			for i, e := range entries {
				if i == baseline {
					continue
				}
				v, err := strconv.Atoi(strings.TrimSpace(e.Text))
				if err != nil {
					v = standard
				}
				vec.Set(i, v)
			}
			done <- true
		}, g.w)
		d.Resize(fyne.NewSize(420, 420))
		d.Show()
	})
	return <-done
}

func (g *gui) EditRatings(alts []decider.Alternative, factors []decider.Factor, b *decider.MatrixBuilder) bool {
	g.lastAlts = append([]decider.Alternative(nil), alts...)
	g.lastFactors = append([]decider.Factor(nil), factors...)

	done := make(chan bool, 1)
	fyne.Do(func() {
		cells := make([][]*widget.Entry, len(alts))
		objects := []fyne.CanvasObject{widget.NewLabel("")}
		for _, f := range factors {
			objects = append(objects, widget.NewLabelWithStyle(f.Name, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}))
		}
		for r, a := range alts {
			objects = append(objects, widget.NewLabel(a.Name))
			cells[r] = make([]*widget.Entry, len(factors))
			for c := range factors {
				e := widget.NewEntry()
				e.SetText(strconv.FormatFloat(b.Get(r, c), 'f', -1, 64))
				if r == 0 {
					e.Disable()
				}
				cells[r][c] = e
				objects = append(objects, e)
			}
		}
		grid := container.NewGridWithColumns(len(factors)+1, objects...)

		lead := widget.NewLabel(fmt.Sprintf("先頭の代替案は基準値 %d に固定されています。\n値が大きいほど望ましい評価です。", b.Standard()))
		lead.Wrapping = fyne.TextWrapWord
		content := container.NewBorder(lead, nil, nil, nil, container.NewVScroll(grid))

		d := dialog.NewCustomConfirm("代替案の評価", "OK", "キャンセル", content, func(ok bool) {
			if !ok {
				done <- false
				return
			}
			for r := 1; r < len(cells); r++ {
				for c := range cells[r] {
					b.SetString(r, c, cells[r][c].Text)
				}
			}
			done <- true
		}, g.w)
		d.Resize(fyne.NewSize(640, 480))
		d.Show()
	})
	confirmed := <-done
	if confirmed {
		g.lastRatings = b.Confirm()
	} else {
		// Abandon is idempotent; the session applies the same fallback
		// after this returns.
		g.lastRatings = b.Abandon()
	}
	return confirmed
}

func (g *gui) PresentResults(ranked []decider.Alternative) {
	done := make(chan struct{})
	fyne.Do(func() {
		rt := widget.NewRichTextFromMarkdown(decider.SummaryMarkdown(ranked))
		rt.Wrapping = fyne.TextWrapWord

		saveReport := widget.NewButtonWithIcon("レポート保存", theme.DocumentSaveIcon(), func() {
			g.onSaveReport(ranked)
		})
		exportCSV := widget.NewButtonWithIcon("CSVエクスポート", theme.DocumentSaveIcon(), func() {
			g.onExportCSV()
		})
		buttons := container.NewGridWithColumns(2, saveReport, exportCSV)
		content := container.NewBorder(nil, buttons, nil, nil, container.NewVScroll(rt))

		d := dialog.NewCustom("判定結果", "閉じる", content, g.w)
		d.SetOnClosed(func() { close(done) })
		d.Resize(fyne.NewSize(480, 420))
		d.Show()
	})
	<-done
}

func (g *gui) onSaveReport(ranked []decider.Alternative) {
	fd := dialog.NewFileSave(func(uc fyne.URIWriteCloser, err error) {
		if err != nil || uc == nil {
			return
		}
		defer uc.Close()
		var out string
		if strings.EqualFold(filepath.Ext(uc.URI().Path()), ".html") {
			out, err = decider.SummaryHTML(ranked)
			if err != nil {
				dialog.ShowError(err, g.w)
				return
			}
		} else {
			out = decider.SummaryMarkdown(ranked)
		}
		if _, err := uc.Write([]byte(out)); err != nil {
			dialog.ShowError(err, g.w)
			return
		}
		g.logger.Printf("レポートを書き出しました: %s", uc.URI().Path())
	}, g.w)
	if g.cfg.ReportFormat == "html" {
		fd.SetFileName("result.html")
	} else {
		fd.SetFileName("result.md")
	}
	fd.Show()
}

func (g *gui) onExportCSV() {
	if g.lastRatings == nil {
		dialog.ShowInformation("情報", "出力データがありません", g.w)
		return
	}
	fd := dialog.NewFileSave(func(uc fyne.URIWriteCloser, err error) {
		if err != nil || uc == nil {
			return
		}
		defer uc.Close()
		if err := decider.WriteCSV(uc, g.lastAlts, g.lastFactors, g.lastRatings); err != nil {
			dialog.ShowError(err, g.w)
			return
		}
		g.logger.Printf("CSVエクスポート完了 (%d件)", len(g.lastAlts))
	}, g.w)
	fd.SetFileName("decision.csv")
	fd.Show()
}
