package remap

// TransparentBlack marks a color that is intentionally invisible. Guarded
// translations skip it so the target falls back to its own default.
const TransparentBlack = "#00000000"

// Translation copies one source style key into one or more VS Code color keys.
type Translation struct {
	Source          string
	Targets         []string
	SkipTransparent bool
}

// colorRoles is applied in order; a later entry overwrites targets written by
// an earlier one.
var colorRoles = []Translation{
	{Source: "background", Targets: []string{"editor.background", "window.background"}},
	{Source: "editor.background", Targets: []string{"editor.background"}, SkipTransparent: true},

	{Source: "surface.background", Targets: []string{"sideBar.background", "activityBar.background"}},
	{Source: "elevated_surface.background", Targets: []string{"editorGroupHeader.tabsBackground", "panel.background"}},

	{Source: "status_bar.background", Targets: []string{"statusBar.background", "statusBar.noFolderBackground", "statusBar.debuggingBackground"}},
	{Source: "title_bar.background", Targets: []string{"titleBar.activeBackground"}},
	{Source: "title_bar.inactive_background", Targets: []string{"titleBar.inactiveBackground"}},

	{Source: "text", Targets: []string{"foreground", "editor.foreground", "sideBar.foreground", "activityBar.foreground"}},
	{Source: "text.muted", Targets: []string{"descriptionForeground"}},
	{Source: "text.accent", Targets: []string{"textLink.foreground"}},

	{Source: "border", Targets: []string{"contrastBorder", "panel.border", "sideBar.border"}},
	{Source: "border.focused", Targets: []string{"focusBorder"}},

	{Source: "tab.active_background", Targets: []string{"tab.activeBackground"}},
	{Source: "tab.inactive_background", Targets: []string{"tab.inactiveBackground"}},
	{Source: "tab_bar.background", Targets: []string{"editorGroupHeader.tabsBackground"}},

	{Source: "editor.active_line.background", Targets: []string{"editor.lineHighlightBackground"}},
	{Source: "editor.line_number", Targets: []string{"editorLineNumber.foreground"}},
	{Source: "editor.active_line_number", Targets: []string{"editorLineNumber.activeForeground"}},
	{Source: "editor.gutter.background", Targets: []string{"editorGutter.background"}},

	{Source: "element.selected", Targets: []string{"editor.selectionBackground", "list.activeSelectionBackground"}},
	{Source: "element.hover", Targets: []string{"list.hoverBackground"}},

	{Source: "scrollbar.thumb.background", Targets: []string{"scrollbarSlider.background"}},
	{Source: "scrollbar.thumb.hover_background", Targets: []string{"scrollbarSlider.hoverBackground"}},
	{Source: "scrollbar.track.background", Targets: []string{"scrollbar.shadow"}},

	{Source: "terminal.background", Targets: []string{"terminal.background"}, SkipTransparent: true},
	{Source: "terminal.foreground", Targets: []string{"terminal.foreground"}},

	{Source: "error.background", Targets: []string{"editorError.background"}},
	{Source: "error", Targets: []string{"editorError.foreground"}},
	{Source: "warning.background", Targets: []string{"editorWarning.background"}},
	{Source: "warning", Targets: []string{"editorWarning.foreground"}},
	{Source: "info.background", Targets: []string{"editorInfo.background"}},
	{Source: "info", Targets: []string{"editorInfo.foreground"}},

	{Source: "version_control.added", Targets: []string{"gitDecoration.addedResourceForeground"}},
	{Source: "version_control.modified", Targets: []string{"gitDecoration.modifiedResourceForeground"}},
	{Source: "version_control.deleted", Targets: []string{"gitDecoration.deletedResourceForeground"}},
	{Source: "version_control.ignored", Targets: []string{"gitDecoration.ignoredResourceForeground"}},
	{Source: "version_control.conflict", Targets: []string{"gitDecoration.conflictingResourceForeground"}},
}

// ansiColors renames the 16 terminal colors.
var ansiColors = [][2]string{
	{"terminal.ansi.black", "terminal.ansiBlack"},
	{"terminal.ansi.red", "terminal.ansiRed"},
	{"terminal.ansi.green", "terminal.ansiGreen"},
	{"terminal.ansi.yellow", "terminal.ansiYellow"},
	{"terminal.ansi.blue", "terminal.ansiBlue"},
	{"terminal.ansi.magenta", "terminal.ansiMagenta"},
	{"terminal.ansi.cyan", "terminal.ansiCyan"},
	{"terminal.ansi.white", "terminal.ansiWhite"},
	{"terminal.ansi.bright_black", "terminal.ansiBrightBlack"},
	{"terminal.ansi.bright_red", "terminal.ansiBrightRed"},
	{"terminal.ansi.bright_green", "terminal.ansiBrightGreen"},
	{"terminal.ansi.bright_yellow", "terminal.ansiBrightYellow"},
	{"terminal.ansi.bright_blue", "terminal.ansiBrightBlue"},
	{"terminal.ansi.bright_magenta", "terminal.ansiBrightMagenta"},
	{"terminal.ansi.bright_cyan", "terminal.ansiBrightCyan"},
	{"terminal.ansi.bright_white", "terminal.ansiBrightWhite"},
}

// tokenScope associates a Zed syntax token with TextMate scopes.
type tokenScope struct {
	token  string
	scopes []string
}

// tokenScopes fixes both the recognized tokens and the order of the emitted rules.
var tokenScopes = []tokenScope{
	{"comment", []string{"comment"}},
	{"string", []string{"string"}},
	{"number", []string{"constant.numeric"}},
	{"keyword", []string{"keyword"}},
	{"function", []string{"entity.name.function"}},
	{"type", []string{"entity.name.type", "support.type"}},
	{"variable", []string{"variable"}},
	{"operator", []string{"keyword.operator"}},
}
