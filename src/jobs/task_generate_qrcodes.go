package jobs

import (
	"context"
	"encoding/json"
	"log"

	"Backend-CourseSignin/src/qrcode"
	"Backend-CourseSignin/src/services/rosters"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleGenerateQRCodesTask 批次產生整個班級的學員 QR Code 圖檔
func HandleGenerateQRCodesTask(roster *rosters.Store) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload GenerateQRCodesPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			log.Println("❌ Payload decode error:", err)
			return err
		}

		classID, err := primitive.ObjectIDFromHex(payload.ClassID)
		if err != nil {
			return err
		}

		members, err := roster.ListRoster(ctx, classID)
		if err != nil {
			log.Println("❌ Failed to load roster:", err)
			return err
		}

		for _, a := range members {
			// 檔名用學員 hash, 同一人重跑會直接覆蓋舊檔
			if err := qrcode.GenerateQRCode(a.Hash, a.Hash); err != nil {
				log.Println("❌ Failed to generate QR code for", a.Name, ":", err)
				return err
			}
		}

		log.Printf("✅ QR codes generated: batch=%s class=%s count=%d", payload.BatchID, payload.ClassID, len(members))
		return nil
	}
}
