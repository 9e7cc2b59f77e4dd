package output

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

type Builder struct {
	strings.Builder
}

func (b *Builder) WriteLine(parts ...string) {
	for _, part := range parts {
		b.WriteString(part)
	}
	b.WriteString("\n")
}

// WriteLinef writes a formatted line with the given indentation level.
func (b *Builder) WriteLinef(indent int, format string, args ...any) {
	b.WriteString(strings.Repeat(Indent, indent))
	b.WriteLine(fmt.Sprintf(format, args...))
}

const Indent = "  "

func GreenStr(format string, args ...any) string {
	return color.HiGreenString(format, args...)
}

func CyanStr(format string, args ...any) string {
	return color.HiCyanString(format, args...)
}

func YellowStr(format string, args ...any) string {
	return color.HiYellowString(format, args...)
}

func RedStr(format string, args ...any) string {
	return color.HiRedString(format, args...)
}

func BoldStr(format string, args ...any) string {
	return color.New(color.Bold).Sprintf(format, args...)
}
