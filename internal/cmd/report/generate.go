package report

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/turbolytics/salesreport/internal/config"
	"github.com/turbolytics/salesreport/internal/ecm"
	"github.com/turbolytics/salesreport/internal/report"
)

const (
	documentName = "report"
	catalogKey   = "catalog.json"
)

func newGenerateCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generates a report for a single sales record and uploads it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			v, err := config.BindFlags(cmd.Flags())
			if err != nil {
				return err
			}

			c, err := config.NewSalesReportFromFile(configPath)
			if err != nil {
				return err
			}

			logger, err := config.NewLogger(c.Global.Logger)
			if err != nil {
				return err
			}
			defer logger.Sync()

			sid := uuid.Must(uuid.NewUUID())
			l := logger.Named("salesreport.report").With(zap.String("run_id", sid.String()))

			store, closeStore, err := config.InitializeStore(ctx, c.Store, l)
			if err != nil {
				return err
			}
			defer closeStore(ctx)

			upload, err := config.InitializeUpload(
				ctx,
				c,
				sid.String(),
				[]ecm.Option{ecm.WithName(documentName)},
				l,
			)
			if err != nil {
				return err
			}
			defer upload.Close(ctx)

			p, err := config.InitializePipeline(c, store, upload.Gateway, l)
			if err != nil {
				return err
			}

			req := report.Request{
				SalesID:      v.GetString("sales-id"),
				MaxRows:      c.Report.MaxRows,
				IsNatTrade:   v.GetBool("nat-trade"),
				IsSupervisor: v.GetBool("supervisor"),
			}
			if v.IsSet("max-rows") {
				req.MaxRows = v.GetInt("max-rows")
			}

			res, err := p.Generate(ctx, req)
			if err != nil {
				return err
			}
			if res == nil {
				l.Info("no report generated")
				return nil
			}

			bs, err := json.Marshal(res.Catalog)
			if err != nil {
				return err
			}

			if upload.Repository == nil {
				fmt.Fprintln(cmd.OutOrStdout(), string(bs))
				return nil
			}
			return upload.Repository.Write(ctx, catalogKey, bytes.NewReader(bs))
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file")
	cmd.MarkFlagRequired("config")
	cmd.Flags().String("sales-id", "", "Sales ID to generate the report for")
	cmd.Flags().Int("max-rows", 0, "Maximum number of rows, overrides report.max_rows")
	cmd.Flags().Bool("nat-trade", false, "Use the national trade headers")
	cmd.Flags().Bool("supervisor", false, "Include confidential activity")

	return cmd
}
