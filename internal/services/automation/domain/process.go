package domain

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/winforge/autoit-mcp/internal/autoit"
)

// RunInput represents the MCP tool input for launching a program.
type RunInput struct {
	Program    string `json:"program" jsonschema:"program path or command line to launch"`
	WorkingDir string `json:"working_dir,omitempty" jsonschema:"working directory for the new process"`
	ShowFlag   int    `json:"show_flag,omitempty" jsonschema:"window show flag: 0 hide, 1 normal (default), 6 minimize, 3 maximize"`
}

// RunResult represents the MCP tool output for launching a program.
type RunResult struct {
	CallOutcome
	PID int `json:"pid" jsonschema:"process identifier of the launched program, 0 on failure"`
}

// RunTool defines the MCP tool schema for launching a program.
func RunTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "run",
		Description: "Launches a program and returns its process identifier",
	}
}

// RunHandler launches a program without waiting.
func RunHandler(auto autoit.Automation) mcp.ToolHandlerFor[RunInput, RunResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RunInput) (*mcp.CallToolResult, RunResult, error) {
		pid, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.Run(ctx, input.Program, input.WorkingDir, input.ShowFlag)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), RunResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		if pid == 0 {
			outcome := Failed("Failed to run program %q", input.Program)
			return outcome.CallToolResult(), RunResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := OK("Program %q started with PID: %d", input.Program, pid)
		return outcome.CallToolResult(), RunResult{CallOutcome: outcome.CallOutcome(), PID: pid}, nil
	}
}

// RunWaitInput represents the MCP tool input for launching a program and
// waiting for it to finish.
type RunWaitInput struct {
	Program    string `json:"program" jsonschema:"program path or command line to launch"`
	WorkingDir string `json:"working_dir,omitempty" jsonschema:"working directory for the new process"`
	ShowFlag   int    `json:"show_flag,omitempty" jsonschema:"window show flag: 0 hide, 1 normal (default), 6 minimize, 3 maximize"`
}

// RunWaitResult represents the MCP tool output for launching a program and
// waiting for it to finish.
type RunWaitResult struct {
	CallOutcome
	ExitCode int `json:"exit_code" jsonschema:"exit code of the completed program"`
}

// RunWaitTool defines the MCP tool schema for launching a program and waiting.
func RunWaitTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "run_wait",
		Description: "Launches a program, waits for it to finish, and returns its exit code",
	}
}

// RunWaitHandler launches a program and waits for completion.
func RunWaitHandler(auto autoit.Automation) mcp.ToolHandlerFor[RunWaitInput, RunWaitResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RunWaitInput) (*mcp.CallToolResult, RunWaitResult, error) {
		exitCode, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.RunWait(ctx, input.Program, input.WorkingDir, input.ShowFlag)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), RunWaitResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := OK("Program %q completed with exit code: %d", input.Program, exitCode)
		return outcome.CallToolResult(), RunWaitResult{CallOutcome: outcome.CallOutcome(), ExitCode: exitCode}, nil
	}
}

// RunAsInput represents the MCP tool input for launching a program as another
// user.
type RunAsInput struct {
	User       string `json:"user" jsonschema:"account user name"`
	Domain     string `json:"domain,omitempty" jsonschema:"account domain, empty for the local machine"`
	Password   string `json:"password" jsonschema:"account password"`
	LogonFlag  int    `json:"logon_flag,omitempty" jsonschema:"logon flag: 0 interactive, 1 load profile, 2 network credentials only"`
	Program    string `json:"program" jsonschema:"program path or command line to launch"`
	WorkingDir string `json:"working_dir,omitempty" jsonschema:"working directory for the new process"`
	ShowFlag   int    `json:"show_flag,omitempty" jsonschema:"window show flag: 0 hide, 1 normal (default), 6 minimize, 3 maximize"`
}

// RunAsResult represents the MCP tool output for launching a program as
// another user.
type RunAsResult struct {
	CallOutcome
	PID int `json:"pid" jsonschema:"process identifier of the launched program, 0 on failure"`
}

// RunAsTool defines the MCP tool schema for launching a program as another
// user.
func RunAsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "run_as",
		Description: "Launches a program under different credentials and returns its process identifier",
	}
}

// RunAsHandler launches a program as another user without waiting.
func RunAsHandler(auto autoit.Automation) mcp.ToolHandlerFor[RunAsInput, RunAsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RunAsInput) (*mcp.CallToolResult, RunAsResult, error) {
		pid, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.RunAs(ctx, input.User, input.Domain, input.Password, input.LogonFlag, input.Program, input.WorkingDir, input.ShowFlag)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), RunAsResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		if pid == 0 {
			outcome := Failed("Failed to run program %q as user %q", input.Program, input.User)
			return outcome.CallToolResult(), RunAsResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := OK("Program %q started as user %q with PID: %d", input.Program, input.User, pid)
		return outcome.CallToolResult(), RunAsResult{CallOutcome: outcome.CallOutcome(), PID: pid}, nil
	}
}

// RunAsWaitInput represents the MCP tool input for launching a program as
// another user and waiting for it to finish.
type RunAsWaitInput struct {
	User       string `json:"user" jsonschema:"account user name"`
	Domain     string `json:"domain,omitempty" jsonschema:"account domain, empty for the local machine"`
	Password   string `json:"password" jsonschema:"account password"`
	LogonFlag  int    `json:"logon_flag,omitempty" jsonschema:"logon flag: 0 interactive, 1 load profile, 2 network credentials only"`
	Program    string `json:"program" jsonschema:"program path or command line to launch"`
	WorkingDir string `json:"working_dir,omitempty" jsonschema:"working directory for the new process"`
	ShowFlag   int    `json:"show_flag,omitempty" jsonschema:"window show flag: 0 hide, 1 normal (default), 6 minimize, 3 maximize"`
}

// RunAsWaitResult represents the MCP tool output for launching a program as
// another user and waiting.
type RunAsWaitResult struct {
	CallOutcome
	ExitCode int `json:"exit_code" jsonschema:"exit code of the completed program"`
}

// RunAsWaitTool defines the MCP tool schema for launching a program as another
// user and waiting.
func RunAsWaitTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "run_as_wait",
		Description: "Launches a program under different credentials, waits, and returns its exit code",
	}
}

// RunAsWaitHandler launches a program as another user and waits for
// completion.
func RunAsWaitHandler(auto autoit.Automation) mcp.ToolHandlerFor[RunAsWaitInput, RunAsWaitResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RunAsWaitInput) (*mcp.CallToolResult, RunAsWaitResult, error) {
		exitCode, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.RunAsWait(ctx, input.User, input.Domain, input.Password, input.LogonFlag, input.Program, input.WorkingDir, input.ShowFlag)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), RunAsWaitResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := OK("Program %q completed as user %q with exit code: %d", input.Program, input.User, exitCode)
		return outcome.CallToolResult(), RunAsWaitResult{CallOutcome: outcome.CallOutcome(), ExitCode: exitCode}, nil
	}
}

// ProcessExistsInput represents the MCP tool input for testing process
// existence.
type ProcessExistsInput struct {
	Process string `json:"process" jsonschema:"process name such as notepad.exe, or a PID as text"`
}

// ProcessExistsResult represents the MCP tool output for testing process
// existence.
type ProcessExistsResult struct {
	CallOutcome
	PID int `json:"pid" jsonschema:"process identifier when found, 0 otherwise"`
}

// ProcessExistsTool defines the MCP tool schema for testing process
// existence.
func ProcessExistsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "process_exists",
		Description: "Reports whether a process is running and returns its identifier",
	}
}

// ProcessExistsHandler tests whether a process is running.
func ProcessExistsHandler(auto autoit.Automation) mcp.ToolHandlerFor[ProcessExistsInput, ProcessExistsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ProcessExistsInput) (*mcp.CallToolResult, ProcessExistsResult, error) {
		pid, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.ProcessExists(ctx, input.Process)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), ProcessExistsResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		if pid == 0 {
			outcome := OK("Process %q does not exist", input.Process)
			return outcome.CallToolResult(), ProcessExistsResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := OK("Process %q exists with PID: %d", input.Process, pid)
		return outcome.CallToolResult(), ProcessExistsResult{CallOutcome: outcome.CallOutcome(), PID: pid}, nil
	}
}

// ProcessCloseInput represents the MCP tool input for terminating a process.
type ProcessCloseInput struct {
	Process string `json:"process" jsonschema:"process name such as notepad.exe, or a PID as text"`
}

// ProcessCloseResult represents the MCP tool output for terminating a
// process.
type ProcessCloseResult struct {
	CallOutcome
	Code int `json:"code" jsonschema:"delegated call return code"`
}

// ProcessCloseTool defines the MCP tool schema for terminating a process.
func ProcessCloseTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "process_close",
		Description: "Terminates a process by name or identifier",
	}
}

// ProcessCloseHandler terminates a process.
func ProcessCloseHandler(auto autoit.Automation) mcp.ToolHandlerFor[ProcessCloseInput, ProcessCloseResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ProcessCloseInput) (*mcp.CallToolResult, ProcessCloseResult, error) {
		code, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.ProcessClose(ctx, input.Process)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), ProcessCloseResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := boolOutcome(code,
			OK("Process %q closed with result: %d", input.Process, code),
			Failed("Failed to close process %q", input.Process),
		)
		return outcome.CallToolResult(), ProcessCloseResult{CallOutcome: outcome.CallOutcome(), Code: code}, nil
	}
}

// ProcessSetPriorityInput represents the MCP tool input for changing process
// priority.
type ProcessSetPriorityInput struct {
	Process  string `json:"process" jsonschema:"process name such as notepad.exe, or a PID as text"`
	Priority int    `json:"priority" jsonschema:"priority class 0-5, from idle to realtime"`
}

// ProcessSetPriorityResult represents the MCP tool output for changing
// process priority.
type ProcessSetPriorityResult struct {
	CallOutcome
	Code int `json:"code" jsonschema:"delegated call return code"`
}

// ProcessSetPriorityTool defines the MCP tool schema for changing process
// priority.
func ProcessSetPriorityTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "process_set_priority",
		Description: "Changes the scheduling priority of a process",
	}
}

// ProcessSetPriorityHandler changes process priority.
func ProcessSetPriorityHandler(auto autoit.Automation) mcp.ToolHandlerFor[ProcessSetPriorityInput, ProcessSetPriorityResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ProcessSetPriorityInput) (*mcp.CallToolResult, ProcessSetPriorityResult, error) {
		code, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.ProcessSetPriority(ctx, input.Process, input.Priority)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), ProcessSetPriorityResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := boolOutcome(code,
			OK("Process %q priority set to %d with result: %d", input.Process, input.Priority, code),
			Failed("Failed to set priority for process %q", input.Process),
		)
		return outcome.CallToolResult(), ProcessSetPriorityResult{CallOutcome: outcome.CallOutcome(), Code: code}, nil
	}
}

// ProcessWaitInput represents the MCP tool input for waiting until a process
// exists.
type ProcessWaitInput struct {
	Process        string `json:"process" jsonschema:"process name such as notepad.exe"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" jsonschema:"seconds to wait, 0 waits indefinitely"`
}

// ProcessWaitResult represents the MCP tool output for waiting until a
// process exists.
type ProcessWaitResult struct {
	CallOutcome
	PID int `json:"pid" jsonschema:"process identifier when found, 0 on timeout"`
}

// ProcessWaitTool defines the MCP tool schema for waiting until a process
// exists.
func ProcessWaitTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "process_wait",
		Description: "Waits until a process is running and returns its identifier",
	}
}

// ProcessWaitHandler waits for a process to appear.
func ProcessWaitHandler(auto autoit.Automation) mcp.ToolHandlerFor[ProcessWaitInput, ProcessWaitResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ProcessWaitInput) (*mcp.CallToolResult, ProcessWaitResult, error) {
		pid, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.ProcessWait(ctx, input.Process, input.TimeoutSeconds)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), ProcessWaitResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		if pid == 0 {
			outcome := Failed("Timed out waiting for process %q", input.Process)
			return outcome.CallToolResult(), ProcessWaitResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := OK("Process %q appeared with PID: %d", input.Process, pid)
		return outcome.CallToolResult(), ProcessWaitResult{CallOutcome: outcome.CallOutcome(), PID: pid}, nil
	}
}

// ProcessWaitCloseInput represents the MCP tool input for waiting until a
// process exits.
type ProcessWaitCloseInput struct {
	Process        string `json:"process" jsonschema:"process name such as notepad.exe, or a PID as text"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" jsonschema:"seconds to wait, 0 waits indefinitely"`
}

// ProcessWaitCloseResult represents the MCP tool output for waiting until a
// process exits.
type ProcessWaitCloseResult struct {
	CallOutcome
	Code int `json:"code" jsonschema:"delegated call return code"`
}

// ProcessWaitCloseTool defines the MCP tool schema for waiting until a
// process exits.
func ProcessWaitCloseTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "process_wait_close",
		Description: "Waits until a process is no longer running",
	}
}

// ProcessWaitCloseHandler waits for a process to exit.
func ProcessWaitCloseHandler(auto autoit.Automation) mcp.ToolHandlerFor[ProcessWaitCloseInput, ProcessWaitCloseResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ProcessWaitCloseInput) (*mcp.CallToolResult, ProcessWaitCloseResult, error) {
		code, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.ProcessWaitClose(ctx, input.Process, input.TimeoutSeconds)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), ProcessWaitCloseResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := boolOutcome(code,
			OK("Process %q exited with result: %d", input.Process, code),
			Failed("Timed out waiting for process %q to exit", input.Process),
		)
		return outcome.CallToolResult(), ProcessWaitCloseResult{CallOutcome: outcome.CallOutcome(), Code: code}, nil
	}
}
