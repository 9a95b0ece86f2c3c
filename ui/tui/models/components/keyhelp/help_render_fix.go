// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keyhelp renders key bindings in the footer. The views below
// replace help.Model's own, which miscount widths when bindings are
// disabled.
package keyhelp

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keycalc/util/slicest"
)

func enabled(bindings []key.Binding) []key.Binding {
	return slicest.Filter(bindings, key.Binding.Enabled)
}

// fit keeps parts from the left as long as they fit into width, ending in
// tail when something had to be left out.
func fit(parts []string, width int, tail string) []string {
	var used int
	var out []string
	tailLen := lipgloss.Width(tail)

	for i, part := range parts {
		partLen := lipgloss.Width(part)
		last := i == len(parts)-1
		if last && used+partLen <= width || !last && used+partLen+tailLen <= width {
			used += partLen
			out = append(out, part)
			continue
		}
		if used+tailLen <= width {
			out = append(out, tail)
		}
		break
	}
	return out
}

// ShortHelpView renders bindings on one line.
func ShortHelpView(m help.Model, bindings []key.Binding) string {
	bindings = enabled(bindings)
	if len(bindings) == 0 {
		return ""
	}

	separator := m.Styles.ShortSeparator.Inline(true).Render(m.ShortSeparator)
	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)

	items := slicest.MapI(bindings, func(i int, kb key.Binding) string {
		var sep string
		if i > 0 {
			sep = separator
		}
		return sep +
			m.Styles.ShortKey.Inline(true).Render(kb.Help().Key) + " " +
			m.Styles.ShortDesc.Inline(true).Render(kb.Help().Desc)
	})

	var b strings.Builder
	for _, item := range fit(items, m.Width, tail) {
		b.WriteString(item)
	}
	return b.String()
}

// FullHelpView renders one column per group.
func FullHelpView(m help.Model, groups [][]key.Binding) string {
	groups = slicest.Filter(groups, func(group []key.Binding) bool {
		return slices.ContainsFunc(group, key.Binding.Enabled)
	})
	if len(groups) == 0 {
		return ""
	}

	separator := m.Styles.FullSeparator.Inline(true).Render(m.FullSeparator)
	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)

	cols := slicest.MapI(groups, func(i int, group []key.Binding) string {
		var sep string
		if i > 0 {
			sep = separator
		}
		group = enabled(group)
		keys := slicest.Map(group, func(b key.Binding) string { return b.Help().Key })
		descriptions := slicest.Map(group, func(b key.Binding) string { return b.Help().Desc })

		return lipgloss.JoinHorizontal(lipgloss.Top,
			sep,
			m.Styles.FullKey.Render(lipgloss.JoinVertical(lipgloss.Left, keys...)),
			" ",
			m.Styles.FullDesc.Render(lipgloss.JoinVertical(lipgloss.Left, descriptions...)),
		)
	})

	return lipgloss.JoinHorizontal(lipgloss.Top, fit(cols, m.Width, tail)...)
}
