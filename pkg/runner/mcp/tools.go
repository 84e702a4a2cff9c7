package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerStatusTool(srv, svc)
	registerAddTool(srv, svc)
	registerRemoveTool(srv, svc)
	registerUndoTool(srv, svc)
	registerSetGoalTool(srv, svc)
	registerHistoryTool(srv, svc)
}

func registerStatusTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"status",
		mcp.WithDescription("Today's water intake, goal and progress."),
	)

	srv.AddTool(tool, func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.Status(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func amountOption(verb string) mcp.ToolOption {
	return mcp.WithNumber("amount",
		mcp.Description(fmt.Sprintf("Glasses to %s, e.g. 1 or 0.5. Defaults to 1.", verb)),
	)
}

func registerAddTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add",
		mcp.WithDescription("Log glasses of water. Intake never exceeds the daily goal."),
		amountOption("add"),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.Add(ctx, request.GetFloat("amount", 1))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerRemoveTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"remove",
		mcp.WithDescription("Take back glasses logged by mistake. Intake never drops below zero."),
		amountOption("remove"),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.Remove(ctx, request.GetFloat("amount", 1))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerUndoTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"undo",
		mcp.WithDescription("Restore the intake from before the last add or remove made through this server. Up to five steps."),
	)

	srv.AddTool(tool, func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.Undo(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerSetGoalTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"set_goal",
		mcp.WithDescription("Change the daily goal in glasses."),
		mcp.WithNumber("goal",
			mcp.Required(),
			mcp.Description("New goal: 6, 8, 10 or 12."),
			mcp.Min(6),
			mcp.Max(12),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		goal, err := request.RequireInt("goal")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.SetGoal(ctx, goal)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerHistoryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"history",
		mcp.WithDescription("The last seven recorded days, most recent first, with a summary."),
	)

	srv.AddTool(tool, func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.History(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
