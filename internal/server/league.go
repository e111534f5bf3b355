package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
	"google.golang.org/protobuf/types/known/timestamppb"

	ticticpouv1 "ticticpou-ranking/gen/proto/ticticpou/v1"
	"ticticpou-ranking/gen/proto/ticticpou/v1/ticticpouv1connect"
	"ticticpou-ranking/internal/domain"
	"ticticpou-ranking/internal/service"
)

type LeagueServer struct {
	playerSvc  *service.PlayerService
	matchSvc   *service.MatchService
	rankingSvc *service.RankingService
}

var (
	_ ticticpouv1connect.RankingServiceHandler = (*LeagueServer)(nil)
	_ ticticpouv1connect.MatchServiceHandler   = (*LeagueServer)(nil)
	_ ticticpouv1connect.PlayerServiceHandler  = (*LeagueServer)(nil)
)

func NewLeagueServer(playerSvc *service.PlayerService, matchSvc *service.MatchService, rankingSvc *service.RankingService) *LeagueServer {
	return &LeagueServer{playerSvc: playerSvc, matchSvc: matchSvc, rankingSvc: rankingSvc}
}

// Handlers returns the mount path and handler of each league service.
func (s *LeagueServer) Handlers(logger zerolog.Logger) map[string]http.Handler {
	interceptors := connect.WithInterceptors(LoggingInterceptor(logger))

	handlers := make(map[string]http.Handler, 3)
	path, handler := ticticpouv1connect.NewRankingServiceHandler(s, interceptors)
	handlers[path] = handler
	path, handler = ticticpouv1connect.NewMatchServiceHandler(s, interceptors)
	handlers[path] = handler
	path, handler = ticticpouv1connect.NewPlayerServiceHandler(s, interceptors)
	handlers[path] = handler
	return handlers
}

func (s *LeagueServer) GetLeaderboard(ctx context.Context, req *connect.Request[ticticpouv1.GetLeaderboardRequest]) (*connect.Response[ticticpouv1.GetLeaderboardResponse], error) {
	mode, err := domain.ParseMode(req.Msg.GetMode())
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	entries, err := s.rankingSvc.Leaderboard(ctx, mode, int(req.Msg.GetLimit()))
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&ticticpouv1.GetLeaderboardResponse{
		Leaderboard: toLeaderboard(mode, entries),
	}), nil
}

func (s *LeagueServer) GetPlayerStats(ctx context.Context, req *connect.Request[ticticpouv1.GetPlayerStatsRequest]) (*connect.Response[ticticpouv1.GetPlayerStatsResponse], error) {
	mode, err := domain.ParseMode(req.Msg.GetMode())
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	entry, err := s.rankingSvc.PlayerStats(ctx, req.Msg.GetPlayerId(), mode)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ticticpouv1.GetPlayerStatsResponse{Entry: toRankingEntry(*entry)}), nil
}

func (s *LeagueServer) GetOverview(ctx context.Context, req *connect.Request[ticticpouv1.GetOverviewRequest]) (*connect.Response[ticticpouv1.GetOverviewResponse], error) {
	boards, err := s.rankingSvc.Overview(ctx, int(req.Msg.GetLimit()))
	if err != nil {
		return nil, toConnectError(err)
	}

	// global first, then the match modes in their declared order
	modes := append([]domain.GameMode{domain.ModeGlobal}, domain.GameModes...)
	resp := &ticticpouv1.GetOverviewResponse{Boards: make([]*ticticpouv1.Leaderboard, 0, len(modes))}
	for _, mode := range modes {
		resp.Boards = append(resp.Boards, toLeaderboard(mode, boards[mode]))
	}
	return connect.NewResponse(resp), nil
}

func (s *LeagueServer) GetRatingHistory(ctx context.Context, req *connect.Request[ticticpouv1.GetRatingHistoryRequest]) (*connect.Response[ticticpouv1.GetRatingHistoryResponse], error) {
	history, err := s.rankingSvc.History(ctx, req.Msg.GetPlayerId(), int(req.Msg.GetLimit()))
	if err != nil {
		return nil, toConnectError(err)
	}

	entries := make([]*ticticpouv1.RatingHistoryEntry, len(history))
	for i, h := range history {
		entries[i] = &ticticpouv1.RatingHistoryEntry{
			MatchId:      h.MatchID,
			Mode:         string(h.Mode),
			PlayedAt:     timestamppb.New(h.PlayedAt),
			Placement:    int32(h.Placement),
			Eliminations: int32(h.Eliminations),
			IsWinner:     h.IsWinner,
			RatingBefore: int32(h.RatingBefore),
			RatingAfter:  int32(h.RatingAfter),
			RatingChange: int32(h.RatingChange),
		}
	}
	return connect.NewResponse(&ticticpouv1.GetRatingHistoryResponse{
		PlayerId: req.Msg.GetPlayerId(),
		Entries:  entries,
	}), nil
}

func (s *LeagueServer) RecordMatch(ctx context.Context, req *connect.Request[ticticpouv1.RecordMatchRequest]) (*connect.Response[ticticpouv1.RecordMatchResponse], error) {
	msg := req.Msg
	input := toMatchInput(msg.GetMode(), msg.GetLocation(), msg.GetPlayedAt(), msg.GetParticipants())
	input.RecordedBy = msg.GetRecordedBy()

	match, err := s.matchSvc.RecordMatch(ctx, input)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ticticpouv1.RecordMatchResponse{Match: toMatch(match)}), nil
}

func (s *LeagueServer) EditMatch(ctx context.Context, req *connect.Request[ticticpouv1.EditMatchRequest]) (*connect.Response[ticticpouv1.EditMatchResponse], error) {
	msg := req.Msg
	input := toMatchInput(msg.GetMode(), msg.GetLocation(), msg.GetPlayedAt(), msg.GetParticipants())

	match, err := s.matchSvc.EditMatch(ctx, msg.GetMatchId(), input)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ticticpouv1.EditMatchResponse{Match: toMatch(match)}), nil
}

func (s *LeagueServer) DeleteMatch(ctx context.Context, req *connect.Request[ticticpouv1.DeleteMatchRequest]) (*connect.Response[ticticpouv1.DeleteMatchResponse], error) {
	if err := s.matchSvc.DeleteMatch(ctx, req.Msg.GetMatchId()); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ticticpouv1.DeleteMatchResponse{MatchId: req.Msg.GetMatchId()}), nil
}

func (s *LeagueServer) GetMatch(ctx context.Context, req *connect.Request[ticticpouv1.GetMatchRequest]) (*connect.Response[ticticpouv1.GetMatchResponse], error) {
	match, err := s.matchSvc.GetMatch(ctx, req.Msg.GetMatchId())
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ticticpouv1.GetMatchResponse{Match: toMatch(match)}), nil
}

func (s *LeagueServer) GetPlayer(ctx context.Context, req *connect.Request[ticticpouv1.GetPlayerRequest]) (*connect.Response[ticticpouv1.GetPlayerResponse], error) {
	player, err := s.playerSvc.GetPlayer(ctx, req.Msg.GetPlayerId())
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ticticpouv1.GetPlayerResponse{Player: toPlayer(player)}), nil
}

func (s *LeagueServer) SyncPlayerProfile(ctx context.Context, req *connect.Request[ticticpouv1.SyncPlayerProfileRequest]) (*connect.Response[ticticpouv1.SyncPlayerProfileResponse], error) {
	player, err := s.playerSvc.SyncProfile(ctx, req.Msg.GetPlayerId())
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ticticpouv1.SyncPlayerProfileResponse{Player: toPlayer(player)}), nil
}

func (s *LeagueServer) RebuildStandings(ctx context.Context, req *connect.Request[ticticpouv1.RebuildStandingsRequest]) (*connect.Response[ticticpouv1.RebuildStandingsResponse], error) {
	corrected, err := s.playerSvc.RebuildStandings(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ticticpouv1.RebuildStandingsResponse{Corrected: corrected}), nil
}

// LoggingInterceptor logs each call with the request-scoped logger set by
// middleware.RequestID, falling back to logger.
func LoggingInterceptor(logger zerolog.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			l := zerolog.Ctx(ctx)
			if l.GetLevel() == zerolog.Disabled {
				l = &logger
			}

			var event *zerolog.Event
			if err != nil {
				event = l.Warn().Str("code", connect.CodeOf(err).String()).Err(err)
			} else {
				event = l.Info()
			}
			event.
				Str("procedure", req.Spec().Procedure).
				Dur("duration", time.Since(start)).
				Msg("rpc handled")
			return resp, err
		}
	}
}

func toConnectError(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, service.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, service.ErrIdentityDisabled):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	}
	// storage and provider failures stay opaque to callers
	return connect.NewError(connect.CodeInternal, errors.New("internal error"))
}
