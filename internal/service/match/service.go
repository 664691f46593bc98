package match

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/oggyb/swipe-match/internal/app"
	svcErr "github.com/oggyb/swipe-match/internal/errors"
	"github.com/oggyb/swipe-match/internal/logger"
	"github.com/oggyb/swipe-match/internal/metrics"
	pb "github.com/oggyb/swipe-match/internal/proto/swipepb"
	"github.com/oggyb/swipe-match/internal/swipe"
	"github.com/oggyb/swipe-match/internal/validation"
)

// Service implements the SwipeService gRPC API.
// Browsing RPCs are routed to a per-session swipe.Engine; the "liked you"
// RPCs read the decision repository and the Redis counter directly.
type Service struct {
	appCtx   *app.AppContext
	log      *slog.Logger
	ledger   *countingLedger
	sessions *Sessions
	defaults swipe.AgeRange
	pageSize int

	pb.UnimplementedSwipeServiceServer
}

// NewMatchService creates the service from AppContext.
// Dependencies include:
//   - Profile and decision repositories
//   - RedisCache for "liked you" counters
//   - Match config (default age range, session idle TTL, page size)
func NewMatchService(appCtx *app.AppContext) *Service {
	log := appCtx.Logger
	if log == nil {
		log = logger.L()
	}
	cfg := appCtx.Config.Match

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 5
	}
	return &Service{
		appCtx:   appCtx,
		log:      log,
		ledger:   newCountingLedger(appCtx.Decisions, appCtx.RedisCache, log),
		sessions: NewSessions(cfg.SessionIdleTTL),
		defaults: swipe.AgeRange{Min: cfg.SeekingAgeMin, Max: cfg.SeekingAgeMax},
		pageSize: pageSize,
	}
}

// Sessions exposes the registry so the server can run its janitor.
func (s *Service) Sessions() *Sessions { return s.sessions }

// StartSession loads the user's profile and ledger and returns the first
// candidate queue. Starting again after a lost session is the recovery
// path: already-decided profiles stay excluded.
func (s *Service) StartSession(ctx context.Context, req *pb.StartSessionRequest) (*pb.SessionResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, svcErr.InvalidArgument(err.Error())
	}

	id := uuid.NewString()
	engine := swipe.NewEngine(swipe.Options{
		Profiles: s.appCtx.Profiles,
		Ledger:   s.ledger,
		Writer:   s.appCtx.Profiles,
		Logger:   logger.ForSession(s.log, id, req.GetUserId()),
		Defaults: s.defaults,
	})

	pending, err := engine.Start(ctx, req.GetUserId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	s.sessions.Put(id, req.GetUserId(), engine)

	logger.FromContext(ctx, s.log).Debug("StartSession", "session", id, "user", req.GetUserId(), "candidates", len(pending))
	return &pb.SessionResponse{SessionId: id, Candidates: toPBProfiles(pending)}, nil
}

// RefreshQueue rebuilds the session's queue against its ledger snapshot.
func (s *Service) RefreshQueue(ctx context.Context, req *pb.SessionRequest) (*pb.SessionResponse, error) {
	sess, err := s.session(req.GetSessionId(), req)
	if err != nil {
		return nil, err
	}
	pending, err := sess.engine.Refresh(ctx)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.SessionResponse{SessionId: sess.id, Candidates: toPBProfiles(pending)}, nil
}

// Decide records a like or dislike on the current candidate.
//
// Behavior:
//   - profile_id must be the head of the queue, otherwise FailedPrecondition.
//   - The decision is persisted before the match check runs.
//   - Outcome is "matched" only for a like answered by an earlier like.
//   - Next is the new head, absent once the queue is exhausted.
func (s *Service) Decide(ctx context.Context, req *pb.DecideRequest) (*pb.DecideResponse, error) {
	sess, err := s.session(req.GetSessionId(), req)
	if err != nil {
		return nil, err
	}

	out, err := sess.engine.Decide(ctx, req.GetProfileId(), req.GetLiked())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	metrics.RecordDecision(out.Liked, out.Matched)

	resp := &pb.DecideResponse{Outcome: pb.OutcomeNone}
	if m, ok := out.Match(); ok {
		resp.Outcome = pb.OutcomeMatched
		resp.MatchedProfileId = m.WithProfileID
	}
	if next, ok := sess.engine.Current(); ok {
		resp.Next = toPBProfile(next)
	}
	return resp, nil
}

// CheckMatch re-evaluates whether the session owner and profile_id like
// each other. Safe to call repeatedly.
func (s *Service) CheckMatch(ctx context.Context, req *pb.CheckMatchRequest) (*pb.CheckMatchResponse, error) {
	sess, err := s.session(req.GetSessionId(), req)
	if err != nil {
		return nil, err
	}
	res, err := sess.engine.CheckMatch(ctx, req.GetProfileId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.CheckMatchResponse{Matched: res == swipe.MatchMatched}, nil
}

// SaveSettings updates the owner's profile. A seeking range with
// min > max is stored as min..min. The queue is rebuilt for the new range.
func (s *Service) SaveSettings(ctx context.Context, req *pb.SaveSettingsRequest) (*pb.SaveSettingsResponse, error) {
	sess, err := s.session(req.SessionId, req)
	if err != nil {
		return nil, err
	}

	updated, err := sess.engine.SaveSettings(ctx, settingsFromPB(req))
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.SaveSettingsResponse{
		Profile:    toPBProfile(updated),
		Candidates: toPBProfiles(sess.engine.Pending()),
	}, nil
}

// RegisterProfile creates a profile plus its login account.
// The email is stored lower-cased and must be unique.
func (s *Service) RegisterProfile(ctx context.Context, req *pb.RegisterProfileRequest) (*pb.RegisterProfileResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, svcErr.InvalidArgument(err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	p := swipe.Settings{}.Apply(swipe.Profile{
		ID:            uuid.NewString(),
		DisplayName:   req.DisplayName,
		Age:           int(req.Age),
		Profession:    req.Profession,
		PhotoRefs:     req.PhotoRefs,
		SeekingAgeMin: int(req.SeekingAgeMin),
		SeekingAgeMax: int(req.SeekingAgeMax),
	}, s.defaults)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	log := logger.FromContext(ctx, s.log)
	if err := s.appCtx.Profiles.Register(ctx, p, email, string(hash)); err != nil {
		log.Warn("RegisterProfile failed", "email", email, "err", err)
		return nil, svcErr.Map(err)
	}

	log.Info("profile registered", "profile", p.ID)
	return &pb.RegisterProfileResponse{Profile: toPBProfile(p)}, nil
}

// EndSession closes a session. Its decisions are already persisted.
func (s *Service) EndSession(_ context.Context, req *pb.SessionRequest) (*pb.EndSessionResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, svcErr.InvalidArgument(err.Error())
	}
	if !s.sessions.Remove(req.GetSessionId()) {
		return nil, svcErr.NotFound("session not found")
	}
	return &pb.EndSessionResponse{}, nil
}

// ListLikedYou returns users who liked the recipient, newest first.
//
// Behavior:
//   - Excludes users that the recipient explicitly passed.
//   - Supports cursor-based pagination with pagination_token.
//   - Likers whose profile no longer exists are skipped.
func (s *Service) ListLikedYou(ctx context.Context, req *pb.ListLikedYouRequest) (*pb.ListLikedYouResponse, error) {
	return s.listLikers(ctx, req, false)
}

// ListNewLikedYou is ListLikedYou without the likers the recipient already
// liked back.
func (s *Service) ListNewLikedYou(ctx context.Context, req *pb.ListLikedYouRequest) (*pb.ListLikedYouResponse, error) {
	return s.listLikers(ctx, req, true)
}

func (s *Service) listLikers(ctx context.Context, req *pb.ListLikedYouRequest, onlyNew bool) (*pb.ListLikedYouResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, svcErr.InvalidArgument(err.Error())
	}
	log := logger.FromContext(ctx, s.log)
	log.Debug("list likers", "recipient", req.GetRecipientUserId(), "token", req.GetPaginationToken(), "only_new", onlyNew)

	list := s.appCtx.Decisions.GetLikers
	if onlyNew {
		list = s.appCtx.Decisions.GetNewLikers
	}
	decisions, nextToken, err := list(ctx, req.GetRecipientUserId(), req.PaginationToken, s.pageSize)
	if err != nil {
		log.Error("list likers failed", "recipient", req.GetRecipientUserId(), "err", err)
		return nil, svcErr.Map(err)
	}

	ids := make([]string, 0, len(decisions))
	for _, d := range decisions {
		ids = append(ids, d.DeciderID)
	}
	profiles, err := s.appCtx.Profiles.GetMany(ctx, ids)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &pb.ListLikedYouResponse{Likers: []*pb.ListLikedYouResponse_Liker{}}
	for _, d := range decisions {
		p, ok := profiles[d.DeciderID]
		if !ok {
			continue
		}
		resp.Likers = append(resp.Likers, &pb.ListLikedYouResponse_Liker{
			ActorId:       d.DeciderID,
			UnixTimestamp: uint64(d.UpdatedAt.UnixMilli()),
			Profile:       toPBProfile(p),
		})
	}
	resp.NextPaginationToken = nextToken
	return resp, nil
}

// CountLikedYou returns how many users liked the recipient.
// Cache-first strategy:
//  1. Read likes:count:<id> from Redis (a hit refreshes its TTL).
//  2. On a miss or a Redis error, count in the DB.
//  3. Store the DB count back into Redis.
func (s *Service) CountLikedYou(ctx context.Context, req *pb.CountLikedYouRequest) (*pb.CountLikedYouResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, svcErr.InvalidArgument(err.Error())
	}
	id := req.GetRecipientUserId()
	log := logger.FromContext(ctx, s.log)

	n, ok, err := s.appCtx.RedisCache.GetLikeCount(ctx, id)
	switch {
	case err != nil:
		metrics.LikeCountCache.WithLabelValues(metrics.CacheError).Inc()
		log.Warn("like count cache read failed", "recipient", id, "err", err)
	case ok:
		metrics.LikeCountCache.WithLabelValues(metrics.CacheHit).Inc()
		return &pb.CountLikedYouResponse{Count: uint64(n)}, nil
	default:
		metrics.LikeCountCache.WithLabelValues(metrics.CacheMiss).Inc()
	}

	count, err := s.appCtx.Decisions.CountLikers(ctx, id)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	if err := s.appCtx.RedisCache.SetLikeCount(ctx, id, count); err != nil {
		log.Warn("like count cache write failed", "recipient", id, "err", err)
	}
	return &pb.CountLikedYouResponse{Count: uint64(count)}, nil
}

// session validates req and resolves its live session.
func (s *Service) session(id string, req any) (*session, error) {
	if err := validation.Struct(req); err != nil {
		return nil, svcErr.InvalidArgument(err.Error())
	}
	sess, ok := s.sessions.Get(id)
	if !ok {
		return nil, svcErr.NotFound("session not found or expired")
	}
	return sess, nil
}
