package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeGenerateQRCodes = "qrcodes:generate"

type GenerateQRCodesPayload struct {
	ClassID string `json:"class_id"`
	BatchID string `json:"batch_id"`
}

func NewGenerateQRCodesTask(classID, batchID string) (*asynq.Task, error) {
	payload, err := json.Marshal(GenerateQRCodesPayload{ClassID: classID, BatchID: batchID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeGenerateQRCodes, payload), nil
}
