package handler

import (
	"github.com/worknest/workforce-api/internal/core/domain"
	"github.com/worknest/workforce-api/internal/core/ports"
)

func toWorkflowResponse(w *domain.Workflow) workflowResponse {
	return workflowResponse{Workflow: *w, Progress: w.Progress()}
}

func toWorkflowResponses(ws []domain.Workflow) []workflowResponse {
	out := make([]workflowResponse, 0, len(ws))
	for i := range ws {
		out = append(out, toWorkflowResponse(&ws[i]))
	}
	return out
}

func toWorkflowListData(res *ports.ListWorkflowsResult) workflowListData {
	return workflowListData{
		Success:    true,
		Count:      len(res.Items),
		Total:      res.Total,
		Page:       res.Page,
		TotalPages: res.TotalPages,
		Data:       toWorkflowResponses(res.Items),
	}
}

func toCreateStepInputs(reqs []createStepRequest) []ports.CreateStepInput {
	steps := make([]ports.CreateStepInput, 0, len(reqs))
	for _, r := range reqs {
		steps = append(steps, ports.CreateStepInput{
			Title:       r.Title,
			Description: r.Description,
			Order:       r.Order,
			AssigneeID:  r.AssignedTo,
			DueDate:     r.DueDate,
			Notes:       r.Notes,
		})
	}
	return steps
}
