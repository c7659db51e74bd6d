// Command probe launches the server over stdio and exercises its tools.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"time"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

var (
	serverPath string
	timeout    time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "probe",
		Short: "Talk to the LinkedIn MCP server over stdio",
	}
	rootCmd.PersistentFlags().StringVar(&serverPath, "server", "linkedin-mcp", "path to the server binary")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 45*time.Second, "overall deadline")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the tools the server exposes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, session *mcp.ClientSession) error {
				res, err := session.ListTools(ctx, nil)
				if err != nil {
					return fmt.Errorf("list tools: %w", err)
				}
				for _, tool := range res.Tools {
					fmt.Printf("%-20s %s\n", tool.Name, tool.Description)
				}
				return nil
			})
		},
	}

	callCmd := &cobra.Command{
		Use:   "call [tool] [json-arguments]",
		Short: "Call a tool and print its text output",
		Long:  `Call a tool, e.g. probe call get_profile '{"linkedin_url":"https://www.linkedin.com/in/someone"}'`,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			arguments := map[string]any{}
			if len(args) == 2 {
				if err := json.Unmarshal([]byte(args[1]), &arguments); err != nil {
					return fmt.Errorf("parse arguments: %w", err)
				}
			}

			return withSession(cmd.Context(), func(ctx context.Context, session *mcp.ClientSession) error {
				result, err := session.CallTool(ctx, &mcp.CallToolParams{
					Name:      args[0],
					Arguments: arguments,
				})
				if err != nil {
					return fmt.Errorf("%s failed: %w", args[0], err)
				}
				printResult(result)
				return nil
			})
		},
	}

	rootCmd.AddCommand(listCmd, callCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func withSession(parent context.Context, fn func(context.Context, *mcp.ClientSession) error) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "linkedin-mcp-probe",
		Version: "0.1.0",
	}, nil)

	cmd := exec.Command(serverPath)
	cmd.Stderr = os.Stderr

	session, err := client.Connect(ctx, &mcp.CommandTransport{Command: cmd}, nil)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", serverPath, err)
	}
	defer func() { _ = session.Close() }()

	return fn(ctx, session)
}

func printResult(res *mcp.CallToolResult) {
	for _, c := range res.Content {
		if txt, ok := c.(*mcp.TextContent); ok {
			fmt.Println(txt.Text)
		}
	}
}
