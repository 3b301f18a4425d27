package response

import "medpipeline/internal/domain/entities"

// StageResponse describes one pipeline stage with its default likelihood
// percentages, used by the UI to pre-fill the add/edit forms.
type StageResponse struct {
	Stage   string `json:"stage"`
	Winning int    `json:"winning"`
	Buying  int    `json:"buying"`
	Color   string `json:"color"`
}

// Stages lists all pipeline stages in progression order.
func Stages() []StageResponse {
	out := make([]StageResponse, 0, len(entities.PipelineStages))
	for _, s := range entities.PipelineStages {
		p := entities.StageProbabilities[s]
		out = append(out, StageResponse{
			Stage:   string(s),
			Winning: p.Winning,
			Buying:  p.Buying,
			Color:   p.Color,
		})
	}
	return out
}
