package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/gridiron/internal/external/vendor"
	"github.com/wonny/gridiron/pkg/httputil"
	"github.com/wonny/gridiron/pkg/redis"
)

type fetchOptions struct {
	keyOptions
	vendor string
}

func newFetchCmd(global *globalOptions) *cobra.Command {
	opts := &fetchOptions{}

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "벤더 피드에서 주간 스탯 수집",
		Long: `벤더 피드에서 한 주의 선수 스탯을 받아 정규화된 Observation 파일로
저장합니다. 저장 위치는 baseline 파이프라인의 입력 경로와 같습니다.

Vendors:
  espn      HTML 스탯 테이블 (VENDOR_ESPN_URL)
  freeapi1  JSON 피드 (VENDOR_FREEAPI1_URL)

Example:
  go run ./cmd/gridiron fetch --year 2025 --week 5 --vendor espn`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(global)
			if err != nil {
				return err
			}
			defer rt.Close()

			if opts.league == "" {
				opts.league = rt.cfg.DefaultLeague
			}
			key, err := artifactKey(opts.league, opts.season, opts.week)
			if err != nil {
				return err
			}

			var baseURL string
			switch opts.vendor {
			case vendor.NameESPN:
				baseURL = rt.cfg.VendorFetch.ESPNURL
			case vendor.NameFreeAPI1:
				baseURL = rt.cfg.VendorFetch.FreeAPI1URL
			default:
				return fmt.Errorf("unknown vendor: %s", opts.vendor)
			}

			start := time.Now()
			out := cmd.OutOrStdout()
			PrintRunHeader(out, RunMetadata{RunID: rt.runID, Command: "Fetch " + opts.vendor, Key: key, Timestamp: start})

			rdb, err := redis.New(cmd.Context(), rt.cfg.Redis)
			if err != nil {
				// 캐시 없이 진행
				rt.log.WithError(err).Warn("Redis unavailable, fetching without cache")
				PrintWarning(out, "redis unavailable, cache disabled")
				rdb = nil
			} else {
				rt.closers = append(rt.closers, func() { _ = rdb.Close() })
			}

			var cache *redis.Cache
			if rdb.Enabled() {
				cache = redis.NewCache(rdb, "gridiron:vendor")
			}

			client := vendor.NewClient(httputil.New(rt.cfg.VendorFetch, rt.log), cache, rt.cfg.Redis.CacheTTL, rt.log)
			source, err := vendor.New(opts.vendor, client, baseURL)
			if err != nil {
				return err
			}

			observations, err := vendor.FetchObservations(cmd.Context(), source, key, time.Now())
			if err != nil {
				return err
			}

			path := rt.store.VendorPath(key, source.Name())
			if err := rt.store.WriteJSON(path, observations); err != nil {
				return err
			}

			PrintWrote(out, len(observations), path)
			PrintRunCompletion(out, rt.runID, time.Since(start))
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.season, "year", 0, "season year (required)")
	cmd.Flags().IntVar(&opts.week, "week", 0, "week number (required)")
	cmd.Flags().StringVar(&opts.league, "league", "", "league (default DEFAULT_LEAGUE)")
	cmd.Flags().StringVar(&opts.vendor, "vendor", vendor.NameESPN, "vendor (espn, freeapi1)")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("week")

	return cmd
}
