package history

import "time"

type HistoryResponse struct {
	ID        string `json:"id"`
	RequestID string `json:"request_id"`
	Action    string `json:"action"`
	ActorID   string `json:"actor_id"`
	CreatedAt string `json:"created_at"`
}

func mapToResponse(h History) HistoryResponse {
	return HistoryResponse{
		ID:        h.ID.String(),
		RequestID: h.RequestID.String(),
		Action:    h.Action,
		ActorID:   h.ActorID.String(),
		CreatedAt: h.CreatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(entries []History) []HistoryResponse {
	resp := make([]HistoryResponse, len(entries))
	for i, h := range entries {
		resp[i] = mapToResponse(h)
	}
	return resp
}
