package main

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cobra"

	"tenderboard/collections"
	"tenderboard/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections, seed demo data and backfill the imprese registry
	// on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.MigrateOfferImprese(app); err != nil {
			log.Printf("Warning: imprese migration failed: %v", err)
		}
		return se.Next()
	})

	// Reseed on demand without starting the server
	app.RootCmd.AddCommand(&cobra.Command{
		Use:   "seed-demo",
		Short: "Create collections and insert the demo commessa",
		Run: func(cmd *cobra.Command, args []string) {
			if err := app.Bootstrap(); err != nil {
				log.Fatal(err)
			}
			collections.Setup(app)
			if err := collections.Seed(app); err != nil {
				log.Fatal(err)
			}
			if err := collections.MigrateOfferImprese(app); err != nil {
				log.Fatal(err)
			}
		},
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Resolve the active commessa cookie for every request
		se.Router.BindFunc(handlers.ActiveCommessaMiddleware(app))

		// ── Commessa management ──────────────────────────────────
		se.Router.GET("/commesse", handlers.HandleCommessaList(app))
		se.Router.POST("/commesse", handlers.HandleCommessaCreate(app))
		se.Router.DELETE("/commesse/{id}", handlers.HandleCommessaDelete(app))
		se.Router.POST("/commesse/{id}/activate", handlers.HandleCommessaActivate(app))
		se.Router.POST("/commesse/deactivate", handlers.HandleCommessaDeactivate(app))

		// ── Imprese registry ─────────────────────────────────────
		se.Router.GET("/imprese", handlers.HandleImpresaList(app))
		se.Router.POST("/imprese", handlers.HandleImpresaCreate(app))

		// ── WBS tree ─────────────────────────────────────────────
		se.Router.GET("/commesse/{id}/wbs", handlers.HandleWbsView(app))

		// ── Tender comparison views ──────────────────────────────
		// All four honor ?impresa= and ?max_round= filters.
		se.Router.GET("/commesse/{id}/tender/trend", handlers.HandleTenderTrend(app))
		se.Router.GET("/commesse/{id}/tender/waterfall", handlers.HandleTenderWaterfall(app))
		se.Router.GET("/commesse/{id}/tender/heatmap", handlers.HandleTenderHeatmap(app))
		se.Router.GET("/commesse/{id}/tender/summary", handlers.HandleTenderSummary(app))

		// ── Comparison exports ───────────────────────────────────
		se.Router.GET("/commesse/{id}/tender/export/excel", handlers.HandleTenderExportExcel(app))
		se.Router.GET("/commesse/{id}/tender/export/pdf", handlers.HandleTenderExportPDF(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
