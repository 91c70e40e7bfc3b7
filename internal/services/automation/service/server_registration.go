package service

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/winforge/autoit-mcp/internal/autoit"
	"github.com/winforge/autoit-mcp/internal/services/automation/audit"
	"github.com/winforge/autoit-mcp/internal/services/automation/domain"
)

type mcpRegistrationModule struct {
	name     string
	register func(mcpRegistrationTarget) error
}

const (
	mouseToolsModuleName          = "mouse-tools"
	keyboardToolsModuleName       = "keyboard-tools"
	windowToolsModuleName         = "window-tools"
	controlToolsModuleName        = "control-tools"
	processToolsModuleName        = "process-tools"
	systemToolsModuleName         = "system-tools"
	fileResourcesModuleName       = "file-resources"
	screenshotResourcesModuleName = "screenshot-resources"
)

// registrationModules lists every tool and resource module in registration
// order.
func registrationModules(auto autoit.Automation, recorder audit.Recorder) []mcpRegistrationModule {
	return []mcpRegistrationModule{
		{name: mouseToolsModuleName, register: func(r mcpRegistrationTarget) error {
			return registerMouseTools(r, auto, recorder)
		}},
		{name: keyboardToolsModuleName, register: func(r mcpRegistrationTarget) error {
			return registerKeyboardTools(r, auto, recorder)
		}},
		{name: windowToolsModuleName, register: func(r mcpRegistrationTarget) error {
			return registerWindowTools(r, auto, recorder)
		}},
		{name: controlToolsModuleName, register: func(r mcpRegistrationTarget) error {
			return registerControlTools(r, auto, recorder)
		}},
		{name: processToolsModuleName, register: func(r mcpRegistrationTarget) error {
			return registerProcessTools(r, auto, recorder)
		}},
		{name: systemToolsModuleName, register: func(r mcpRegistrationTarget) error {
			return registerSystemTools(r, auto, recorder)
		}},
		{name: fileResourcesModuleName, register: func(r mcpRegistrationTarget) error {
			return registerFileResources(r)
		}},
		{name: screenshotResourcesModuleName, register: func(r mcpRegistrationTarget) error {
			return registerScreenshotResources(r, auto)
		}},
	}
}

type mcpRegistrationTarget interface {
	AddTool(*mcp.Tool, any) error
	AddResourceTemplate(*mcp.ResourceTemplate, mcp.ResourceHandler)
}

type mcpServerRegistrationAdapter struct {
	server *mcp.Server
}

func (r mcpServerRegistrationAdapter) AddTool(tool *mcp.Tool, handler any) error {
	return addMCPTool(r.server, tool, handler)
}

func (r mcpServerRegistrationAdapter) AddResourceTemplate(resourceTemplate *mcp.ResourceTemplate, handler mcp.ResourceHandler) {
	r.server.AddResourceTemplate(resourceTemplate, handler)
}

type mcpToolRegistrar struct {
	matches func(any) bool
	add     func(*mcp.Server, *mcp.Tool, any)
}

func newMCPToolRegistrar[I any, O any]() mcpToolRegistrar {
	return mcpToolRegistrar{
		matches: func(handler any) bool {
			_, ok := handler.(mcp.ToolHandlerFor[I, O])
			return ok
		},
		add: func(server *mcp.Server, tool *mcp.Tool, handler any) {
			mcp.AddTool(server, tool, handler.(mcp.ToolHandlerFor[I, O]))
		},
	}
}

var mcpToolRegistrars = []mcpToolRegistrar{
	newMCPToolRegistrar[domain.MouseMoveInput, domain.MouseMoveResult](),
	newMCPToolRegistrar[domain.MouseClickInput, domain.MouseClickResult](),
	newMCPToolRegistrar[domain.MouseClickDragInput, domain.MouseClickDragResult](),
	newMCPToolRegistrar[domain.MouseDownInput, domain.MouseDownResult](),
	newMCPToolRegistrar[domain.MouseUpInput, domain.MouseUpResult](),
	newMCPToolRegistrar[domain.MouseGetPosInput, domain.MouseGetPosResult](),
	newMCPToolRegistrar[domain.MouseGetCursorInput, domain.MouseGetCursorResult](),
	newMCPToolRegistrar[domain.MouseWheelInput, domain.MouseWheelResult](),
	newMCPToolRegistrar[domain.SendKeysInput, domain.SendKeysResult](),
	newMCPToolRegistrar[domain.ClipGetInput, domain.ClipGetResult](),
	newMCPToolRegistrar[domain.ClipPutInput, domain.ClipPutResult](),
	newMCPToolRegistrar[domain.SetOptionInput, domain.SetOptionResult](),
	newMCPToolRegistrar[domain.ToolTipInput, domain.ToolTipResult](),
	newMCPToolRegistrar[domain.WinActivateInput, domain.WinActivateResult](),
	newMCPToolRegistrar[domain.WinActivateByHandleInput, domain.WinActivateByHandleResult](),
	newMCPToolRegistrar[domain.WinActiveInput, domain.WinActiveResult](),
	newMCPToolRegistrar[domain.WinCloseInput, domain.WinCloseResult](),
	newMCPToolRegistrar[domain.WinExistsInput, domain.WinExistsResult](),
	newMCPToolRegistrar[domain.WinGetHandleInput, domain.WinGetHandleResult](),
	newMCPToolRegistrar[domain.WinGetPosInput, domain.WinGetPosResult](),
	newMCPToolRegistrar[domain.WinGetTextInput, domain.WinGetTextResult](),
	newMCPToolRegistrar[domain.WinGetTitleInput, domain.WinGetTitleResult](),
	newMCPToolRegistrar[domain.WinMoveInput, domain.WinMoveResult](),
	newMCPToolRegistrar[domain.WinSetStateInput, domain.WinSetStateResult](),
	newMCPToolRegistrar[domain.WinWaitInput, domain.WinWaitResult](),
	newMCPToolRegistrar[domain.WinWaitActiveInput, domain.WinWaitActiveResult](),
	newMCPToolRegistrar[domain.WinWaitCloseInput, domain.WinWaitCloseResult](),
	newMCPToolRegistrar[domain.ControlClickInput, domain.ControlClickResult](),
	newMCPToolRegistrar[domain.ControlClickByHandleInput, domain.ControlClickByHandleResult](),
	newMCPToolRegistrar[domain.ControlCommandInput, domain.ControlCommandResult](),
	newMCPToolRegistrar[domain.ControlGetTextInput, domain.ControlGetTextResult](),
	newMCPToolRegistrar[domain.ControlSetTextInput, domain.ControlSetTextResult](),
	newMCPToolRegistrar[domain.ControlSendInput, domain.ControlSendResult](),
	newMCPToolRegistrar[domain.ControlFocusInput, domain.ControlFocusResult](),
	newMCPToolRegistrar[domain.ControlGetHandleInput, domain.ControlGetHandleResult](),
	newMCPToolRegistrar[domain.ControlGetPosInput, domain.ControlGetPosResult](),
	newMCPToolRegistrar[domain.ControlMoveInput, domain.ControlMoveResult](),
	newMCPToolRegistrar[domain.ControlShowInput, domain.ControlShowResult](),
	newMCPToolRegistrar[domain.ControlHideInput, domain.ControlHideResult](),
	newMCPToolRegistrar[domain.RunInput, domain.RunResult](),
	newMCPToolRegistrar[domain.RunWaitInput, domain.RunWaitResult](),
	newMCPToolRegistrar[domain.RunAsInput, domain.RunAsResult](),
	newMCPToolRegistrar[domain.RunAsWaitInput, domain.RunAsWaitResult](),
	newMCPToolRegistrar[domain.ProcessExistsInput, domain.ProcessExistsResult](),
	newMCPToolRegistrar[domain.ProcessCloseInput, domain.ProcessCloseResult](),
	newMCPToolRegistrar[domain.ProcessSetPriorityInput, domain.ProcessSetPriorityResult](),
	newMCPToolRegistrar[domain.ProcessWaitInput, domain.ProcessWaitResult](),
	newMCPToolRegistrar[domain.ProcessWaitCloseInput, domain.ProcessWaitCloseResult](),
	newMCPToolRegistrar[domain.ShutdownInput, domain.ShutdownResult](),
}

func addMCPTool(server *mcp.Server, tool *mcp.Tool, handler any) error {
	for _, registrar := range mcpToolRegistrars {
		if registrar.matches(handler) {
			registrar.add(server, tool, handler)
			return nil
		}
	}
	toolName := "<nil>"
	if tool != nil {
		toolName = tool.Name
	}
	return fmt.Errorf("unsupported handler type for tool %q", toolName)
}

func registerTool(registrar mcpRegistrationTarget, tool *mcp.Tool, handler any) error {
	return registrar.AddTool(tool, handler)
}
