package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// ToolExecutor calls a palette tool and prints the result.
type ToolExecutor struct {
	client  *CLIClient
	printer *Printer
}

// NewToolExecutor creates a new tool executor
func NewToolExecutor(client *CLIClient, printer *Printer) *ToolExecutor {
	return &ToolExecutor{client: client, printer: printer}
}

// Execute executes a tool and formats the output
func (e *ToolExecutor) Execute(ctx context.Context, toolName string, arguments map[string]interface{}) error {
	result, err := e.client.CallTool(ctx, toolName, arguments)
	if err != nil {
		return fmt.Errorf("failed to execute tool %s: %w", toolName, err)
	}

	texts := textContents(result)
	if result.IsError {
		return fmt.Errorf("%s", strings.Join(texts, "\n"))
	}
	if len(texts) == 0 {
		return nil
	}
	return e.printer.Raw(texts[0])
}

// ParseToolArgs turns key=value pairs into tool arguments. Values that
// parse as numbers are sent as numbers.
func ParseToolArgs(pairs []string) (map[string]interface{}, error) {
	args := make(map[string]interface{}, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid argument %q (want key=value)", pair)
		}
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			args[key] = f
		} else {
			args[key] = value
		}
	}
	return args, nil
}
