package jobs

import (
	"log"

	"Backend-CourseSignin/src/database"
	"Backend-CourseSignin/src/services/rosters"

	"github.com/hibiken/asynq"
)

// StartWorker 啟動 asynq worker, 沒有 Redis 時直接跳過 (dev mode)
func StartWorker(roster *rosters.Store) {
	if database.RedisURI == "" || database.AsynqClient == nil {
		log.Println("⚠️ Redis not available. Worker will not be started.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeGenerateQRCodes, HandleGenerateQRCodesTask(roster))

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Println("❌ Worker stopped:", err)
		}
	}()
	log.Println("✅ Asynq worker started")
}
