package output

import (
	"encoding/json"
	"io"
	"os"

	"github.com/fatih/color"
)

// Out 所有输出的目标，测试时可替换
var Out io.Writer = os.Stdout

// PrintJSON 输出JSON格式
func PrintJSON(data any) error {
	encoder := json.NewEncoder(Out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Success 输出成功消息
func Success(format string, args ...any) {
	green := color.New(color.FgGreen, color.Bold)
	green.Fprintf(Out, "✅ "+format+"\n", args...)
}

// Error 输出错误消息
func Error(format string, args ...any) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprintf(Out, "❌ "+format+"\n", args...)
}

// Info 输出信息
func Info(format string, args ...any) {
	cyan := color.New(color.FgCyan)
	cyan.Fprintf(Out, "ℹ️  "+format+"\n", args...)
}

// Warning 输出警告
func Warning(format string, args ...any) {
	yellow := color.New(color.FgYellow)
	yellow.Fprintf(Out, "⚠️  "+format+"\n", args...)
}
