package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/laradl/laradl/color"
	"github.com/laradl/laradl/constant"
	"github.com/laradl/laradl/key"
	"github.com/laradl/laradl/style"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field is a registered setting.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Default maps every key to its field.
var Default = make(map[string]Field)

func register(k string, v any, description string) {
	if _, ok := Default[k]; ok {
		panic("duplicate config key: " + k)
	}
	Default[k] = Field{Key: k, Value: v, Description: description}
}

func init() {
	register(key.DownloadsPath, constant.DefaultDownloadPath, "Root directory the catalog is downloaded into.\nTopics and series become nested directories")
	register(key.DownloadsMaxQuality, constant.DefaultMaxQuality, "Highest vertical resolution to download.\nThe best variant at or below this height is picked")
	register(key.DownloadsForce, false, "Download episodes again even if a file of the expected size already exists")
	register(key.DownloadsReferer, constant.DefaultReferer, "Referer header sent to the video player and media hosts")

	register(key.LaracastsBaseURL, constant.SiteURL, "Base URL of the catalog site")
	register(key.LaracastsEmail, "", "Account email used to sign in.\nType \"laradl login\" to store it together with the password")
	register(key.LaracastsPassword, "", "Account password used to sign in.\nLeave empty to read it from the system keyring")

	register(key.NetworkSpoofTLS, false, "Use a browser TLS fingerprint for catalog requests")
	register(key.NetworkUserAgent, constant.UserAgent, "User-Agent header sent with every request")

	register(key.HistorySaveOnDownload, true, "Record downloaded episodes in the history file")

	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")

	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")

	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Check for a new release when the help or version is printed")
	register(key.CliHeadless, false, "Disable progress bars and print one line per episode instead")
}

// Lookup returns the registered field for k.
func Lookup(k string) (Field, bool) {
	f, ok := Default[k]
	return f, ok
}

// Closest returns the registered key nearest to k by edit distance.
func Closest(k string) string {
	return lo.MinBy(lo.Keys(Default), func(a, b string) bool {
		return levenshtein.Distance(k, a) < levenshtein.Distance(k, b)
	})
}

// Env returns the environment variable overriding the field.
func (f *Field) Env() string {
	return strings.ToUpper(constant.Laradl + "_" + EnvKeyReplacer.Replace(f.Key))
}

// Secret reports whether the field must never be written to the config file.
func (f *Field) Secret() bool {
	return f.Key == key.LaracastsPassword
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Parse converts raw command line values to the type of the field's default.
func (f *Field) Parse(raw []string) (any, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("no value given for %s", f.Key)
	}

	switch f.Value.(type) {
	case string:
		return raw[0], nil
	case int:
		n, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid integer value for %s: %s", f.Key, raw[0])
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value for %s: %s", f.Key, raw[0])
		}
		return b, nil
	case []string:
		return raw, nil
	default:
		return nil, fmt.Errorf("unsupported type %s for %s", f.typeName(), f.Key)
	}
}

// masked reports whether the current value must not be printed.
func (f *Field) masked() bool {
	return f.Secret() && viper.GetString(f.Key) != ""
}

// MarshalJSON writes the field with its current value next to the default.
func (f *Field) MarshalJSON() ([]byte, error) {
	value := viper.Get(f.Key)
	if f.masked() {
		value = "********"
	}

	return json.Marshal(map[string]any{
		"key":         f.Key,
		"env":         f.Env(),
		"value":       value,
		"default":     f.Value,
		"description": f.Description,
		"type":        f.typeName(),
	})
}

// Pretty renders the field for the config info command.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(pretty.Execute(&b, f))
	return b.String()
}

func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		if value {
			return style.Fg(color.Green)("true")
		}
		return style.Fg(color.Red)("false")
	case string:
		if value == "" {
			return style.Faint(`""`)
		}
		return style.Fg(color.Yellow)(value)
	default:
		return fmt.Sprint(value)
	}
}

var pretty = template.Must(template.New("field").Funcs(template.FuncMap{
	"wrap":   func(s string) string { return style.Faint(wordwrap.String(s, 72)) },
	"label":  style.Fg(color.Blue),
	"key":    style.Fg(color.Purple),
	"hl":     highlight,
	"now":    func(k string) any { return viper.Get(k) },
	"kind":   func(f *Field) string { return f.typeName() },
	"masked": func(f *Field) bool { return f.masked() },
}).Parse(`{{ wrap .Description }}
{{ label "Key:" }}     {{ key .Key }}
{{ label "Env:" }}     {{ .Env }}
{{ label "Value:" }}   {{ if masked . }}********{{ else }}{{ hl (now .Key) }}{{ end }}
{{ label "Default:" }} {{ hl .Value }}
{{ label "Type:" }}    {{ kind . }}`))
