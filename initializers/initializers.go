package initializers

import (
	"context"

	"talento-backend/config"
	"talento-backend/db"
	"talento-backend/fiberlog"
	"talento-backend/lib/azuread"
	"talento-backend/lib/candidate"
	candidateworker "talento-backend/lib/candidate/worker"
	"talento-backend/lib/deletionrequest"
	"talento-backend/lib/dicts"
	"talento-backend/lib/education"
	"talento-backend/lib/experience"
	pdfexport "talento-backend/lib/export/pdf"
	xlsexport "talento-backend/lib/export/xls"
	"talento-backend/lib/knowledge"
	"talento-backend/lib/preferences"
	"talento-backend/lib/reports"
	"talento-backend/lib/users"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	dicts.NewHandlers(db.DB)
	users.NewHandler()
	if err := azuread.NewHandler(); err != nil {
		panic(err.Error())
	}
	candidate.NewHandler()
	education.NewHandler()
	experience.NewHandler()
	knowledge.NewHandler()
	preferences.NewHandler()
	reports.NewHandler()
	deletionrequest.NewHandler()
	xlsexport.NewHandler()
	pdfexport.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Limpieza periódica de formularios incompletos vencidos
	candidateworker.StartWorker(ctx)
}
