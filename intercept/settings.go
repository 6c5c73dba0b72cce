package intercept

import "github.com/jonwraymond/callops/settings"

// Setting names recognized by every interceptor.
const (
	// SettingEnabled gates logging. A bool switches logging on or off
	// outright; a non-negative int is a depth budget, logging the call
	// only while the budget exceeds the number of enabled ancestors.
	SettingEnabled = "enabled"

	// SettingLogArgs controls the arguments line on entry.
	SettingLogArgs = "log_args"

	// SettingLogRetval controls the return value line on exit.
	SettingLogRetval = "log_retval"

	// SettingLogExit controls the exit line.
	SettingLogExit = "log_exit"

	// SettingLogElapsed controls the elapsed time line on exit.
	SettingLogElapsed = "log_elapsed"

	// SettingLogCallNumber adds the logged-call number to the entry and
	// exit lines.
	SettingLogCallNumber = "log_call_number"

	// SettingIndent indents output by four spaces per enabled ancestor.
	SettingIndent = "indent"

	// SettingArgsSep separates rendered arguments. A separator ending in
	// a newline puts each argument on its own line.
	SettingArgsSep = "args_sep"

	// SettingRecordHistory keeps a record of each logged call.
	SettingRecordHistory = "record_history"

	// SettingMaxHistory bounds the retained records. Zero keeps an
	// unbounded history; a negative bound drops records while counters
	// persist.
	SettingMaxHistory = "max_history"

	// SettingPrefix is prepended to the callable's display name. It is
	// fixed at construction and cannot be rebound per call.
	SettingPrefix = "prefix"
)

// DefaultSpecs declares the canonical interceptor settings. The mapping
// built from these backs every Interceptor; hosts adjust values through
// Settings.
func DefaultSpecs() []settings.Spec {
	return []settings.Spec{
		{Name: SettingEnabled, Kind: settings.Any, Default: true, Mutable: true, Visible: true, AllowIndirect: true},
		{Name: SettingLogArgs, Kind: settings.Bool, Default: true, Mutable: true, Visible: true, AllowIndirect: true},
		{Name: SettingLogRetval, Kind: settings.Bool, Default: false, Mutable: true, Visible: true, AllowIndirect: true},
		{Name: SettingLogExit, Kind: settings.Bool, Default: true, Mutable: true, Visible: true, AllowIndirect: true},
		{Name: SettingLogElapsed, Kind: settings.Bool, Default: false, Mutable: true, Visible: true, AllowIndirect: true},
		{Name: SettingLogCallNumber, Kind: settings.Bool, Default: false, Mutable: true, Visible: true, AllowIndirect: true},
		{Name: SettingIndent, Kind: settings.Bool, Default: false, Mutable: true, Visible: true, AllowIndirect: true},
		{Name: SettingArgsSep, Kind: settings.String, Default: ", ", Mutable: true, Visible: true, AllowIndirect: true},
		{Name: SettingRecordHistory, Kind: settings.Bool, Default: false, Mutable: true, Visible: true, AllowIndirect: true},
		{Name: SettingMaxHistory, Kind: settings.Int, Default: 0, Mutable: true, Visible: true},
		{Name: SettingPrefix, Kind: settings.String, Default: "", Visible: true},
	}
}
