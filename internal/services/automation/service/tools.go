package service

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/winforge/autoit-mcp/internal/autoit"
	"github.com/winforge/autoit-mcp/internal/services/automation/audit"
	"github.com/winforge/autoit-mcp/internal/services/automation/domain"
)

func registerMouseTools(registrar mcpRegistrationTarget, auto autoit.Automation, recorder audit.Recorder) error {
	registrations := []struct {
		tool    *mcp.Tool
		handler any
	}{
		{tool: domain.MouseMoveTool(), handler: instrument(domain.MouseMoveTool().Name, recorder, domain.MouseMoveHandler(auto))},
		{tool: domain.MouseClickTool(), handler: instrument(domain.MouseClickTool().Name, recorder, domain.MouseClickHandler(auto))},
		{tool: domain.MouseClickDragTool(), handler: instrument(domain.MouseClickDragTool().Name, recorder, domain.MouseClickDragHandler(auto))},
		{tool: domain.MouseDownTool(), handler: instrument(domain.MouseDownTool().Name, recorder, domain.MouseDownHandler(auto))},
		{tool: domain.MouseUpTool(), handler: instrument(domain.MouseUpTool().Name, recorder, domain.MouseUpHandler(auto))},
		{tool: domain.MouseGetPosTool(), handler: instrument(domain.MouseGetPosTool().Name, recorder, domain.MouseGetPosHandler(auto))},
		{tool: domain.MouseGetCursorTool(), handler: instrument(domain.MouseGetCursorTool().Name, recorder, domain.MouseGetCursorHandler(auto))},
		{tool: domain.MouseWheelTool(), handler: instrument(domain.MouseWheelTool().Name, recorder, domain.MouseWheelHandler(auto))},
	}
	for _, registration := range registrations {
		if err := registerTool(registrar, registration.tool, registration.handler); err != nil {
			return err
		}
	}
	return nil
}

func registerKeyboardTools(registrar mcpRegistrationTarget, auto autoit.Automation, recorder audit.Recorder) error {
	registrations := []struct {
		tool    *mcp.Tool
		handler any
	}{
		{tool: domain.SendKeysTool(), handler: instrument(domain.SendKeysTool().Name, recorder, domain.SendKeysHandler(auto))},
		{tool: domain.ClipGetTool(), handler: instrument(domain.ClipGetTool().Name, recorder, domain.ClipGetHandler(auto))},
		{tool: domain.ClipPutTool(), handler: instrument(domain.ClipPutTool().Name, recorder, domain.ClipPutHandler(auto))},
		{tool: domain.SetOptionTool(), handler: instrument(domain.SetOptionTool().Name, recorder, domain.SetOptionHandler(auto))},
		{tool: domain.ToolTipTool(), handler: instrument(domain.ToolTipTool().Name, recorder, domain.ToolTipHandler(auto))},
	}
	for _, registration := range registrations {
		if err := registerTool(registrar, registration.tool, registration.handler); err != nil {
			return err
		}
	}
	return nil
}

func registerWindowTools(registrar mcpRegistrationTarget, auto autoit.Automation, recorder audit.Recorder) error {
	registrations := []struct {
		tool    *mcp.Tool
		handler any
	}{
		{tool: domain.WinActivateTool(), handler: instrument(domain.WinActivateTool().Name, recorder, domain.WinActivateHandler(auto))},
		{tool: domain.WinActivateByHandleTool(), handler: instrument(domain.WinActivateByHandleTool().Name, recorder, domain.WinActivateByHandleHandler(auto))},
		{tool: domain.WinActiveTool(), handler: instrument(domain.WinActiveTool().Name, recorder, domain.WinActiveHandler(auto))},
		{tool: domain.WinCloseTool(), handler: instrument(domain.WinCloseTool().Name, recorder, domain.WinCloseHandler(auto))},
		{tool: domain.WinExistsTool(), handler: instrument(domain.WinExistsTool().Name, recorder, domain.WinExistsHandler(auto))},
		{tool: domain.WinGetHandleTool(), handler: instrument(domain.WinGetHandleTool().Name, recorder, domain.WinGetHandleHandler(auto))},
		{tool: domain.WinGetPosTool(), handler: instrument(domain.WinGetPosTool().Name, recorder, domain.WinGetPosHandler(auto))},
		{tool: domain.WinGetTextTool(), handler: instrument(domain.WinGetTextTool().Name, recorder, domain.WinGetTextHandler(auto))},
		{tool: domain.WinGetTitleTool(), handler: instrument(domain.WinGetTitleTool().Name, recorder, domain.WinGetTitleHandler(auto))},
		{tool: domain.WinMoveTool(), handler: instrument(domain.WinMoveTool().Name, recorder, domain.WinMoveHandler(auto))},
		{tool: domain.WinSetStateTool(), handler: instrument(domain.WinSetStateTool().Name, recorder, domain.WinSetStateHandler(auto))},
		{tool: domain.WinWaitTool(), handler: instrument(domain.WinWaitTool().Name, recorder, domain.WinWaitHandler(auto))},
		{tool: domain.WinWaitActiveTool(), handler: instrument(domain.WinWaitActiveTool().Name, recorder, domain.WinWaitActiveHandler(auto))},
		{tool: domain.WinWaitCloseTool(), handler: instrument(domain.WinWaitCloseTool().Name, recorder, domain.WinWaitCloseHandler(auto))},
	}
	for _, registration := range registrations {
		if err := registerTool(registrar, registration.tool, registration.handler); err != nil {
			return err
		}
	}
	return nil
}

func registerControlTools(registrar mcpRegistrationTarget, auto autoit.Automation, recorder audit.Recorder) error {
	registrations := []struct {
		tool    *mcp.Tool
		handler any
	}{
		{tool: domain.ControlClickTool(), handler: instrument(domain.ControlClickTool().Name, recorder, domain.ControlClickHandler(auto))},
		{tool: domain.ControlClickByHandleTool(), handler: instrument(domain.ControlClickByHandleTool().Name, recorder, domain.ControlClickByHandleHandler(auto))},
		{tool: domain.ControlCommandTool(), handler: instrument(domain.ControlCommandTool().Name, recorder, domain.ControlCommandHandler(auto))},
		{tool: domain.ControlGetTextTool(), handler: instrument(domain.ControlGetTextTool().Name, recorder, domain.ControlGetTextHandler(auto))},
		{tool: domain.ControlSetTextTool(), handler: instrument(domain.ControlSetTextTool().Name, recorder, domain.ControlSetTextHandler(auto))},
		{tool: domain.ControlSendTool(), handler: instrument(domain.ControlSendTool().Name, recorder, domain.ControlSendHandler(auto))},
		{tool: domain.ControlFocusTool(), handler: instrument(domain.ControlFocusTool().Name, recorder, domain.ControlFocusHandler(auto))},
		{tool: domain.ControlGetHandleTool(), handler: instrument(domain.ControlGetHandleTool().Name, recorder, domain.ControlGetHandleHandler(auto))},
		{tool: domain.ControlGetPosTool(), handler: instrument(domain.ControlGetPosTool().Name, recorder, domain.ControlGetPosHandler(auto))},
		{tool: domain.ControlMoveTool(), handler: instrument(domain.ControlMoveTool().Name, recorder, domain.ControlMoveHandler(auto))},
		{tool: domain.ControlShowTool(), handler: instrument(domain.ControlShowTool().Name, recorder, domain.ControlShowHandler(auto))},
		{tool: domain.ControlHideTool(), handler: instrument(domain.ControlHideTool().Name, recorder, domain.ControlHideHandler(auto))},
	}
	for _, registration := range registrations {
		if err := registerTool(registrar, registration.tool, registration.handler); err != nil {
			return err
		}
	}
	return nil
}

func registerProcessTools(registrar mcpRegistrationTarget, auto autoit.Automation, recorder audit.Recorder) error {
	registrations := []struct {
		tool    *mcp.Tool
		handler any
	}{
		{tool: domain.RunTool(), handler: instrument(domain.RunTool().Name, recorder, domain.RunHandler(auto))},
		{tool: domain.RunWaitTool(), handler: instrument(domain.RunWaitTool().Name, recorder, domain.RunWaitHandler(auto))},
		{tool: domain.RunAsTool(), handler: instrument(domain.RunAsTool().Name, recorder, domain.RunAsHandler(auto))},
		{tool: domain.RunAsWaitTool(), handler: instrument(domain.RunAsWaitTool().Name, recorder, domain.RunAsWaitHandler(auto))},
		{tool: domain.ProcessExistsTool(), handler: instrument(domain.ProcessExistsTool().Name, recorder, domain.ProcessExistsHandler(auto))},
		{tool: domain.ProcessCloseTool(), handler: instrument(domain.ProcessCloseTool().Name, recorder, domain.ProcessCloseHandler(auto))},
		{tool: domain.ProcessSetPriorityTool(), handler: instrument(domain.ProcessSetPriorityTool().Name, recorder, domain.ProcessSetPriorityHandler(auto))},
		{tool: domain.ProcessWaitTool(), handler: instrument(domain.ProcessWaitTool().Name, recorder, domain.ProcessWaitHandler(auto))},
		{tool: domain.ProcessWaitCloseTool(), handler: instrument(domain.ProcessWaitCloseTool().Name, recorder, domain.ProcessWaitCloseHandler(auto))},
	}
	for _, registration := range registrations {
		if err := registerTool(registrar, registration.tool, registration.handler); err != nil {
			return err
		}
	}
	return nil
}

func registerSystemTools(registrar mcpRegistrationTarget, auto autoit.Automation, recorder audit.Recorder) error {
	return registerTool(registrar, domain.ShutdownTool(), instrument(domain.ShutdownTool().Name, recorder, domain.ShutdownHandler(auto)))
}

func registerFileResources(registrar mcpRegistrationTarget) error {
	registrar.AddResourceTemplate(domain.FileResourceTemplate(), domain.FileResourceHandler())
	return nil
}

func registerScreenshotResources(registrar mcpRegistrationTarget, auto autoit.Automation) error {
	registrar.AddResourceTemplate(domain.ScreenshotResourceTemplate(), domain.ScreenshotResourceHandler(auto))
	return nil
}
