package match

import (
	pb "github.com/oggyb/swipe-match/internal/proto/swipepb"
	"github.com/oggyb/swipe-match/internal/swipe"
)

func toPBProfile(p swipe.Profile) *pb.Profile {
	return &pb.Profile{
		Id:            p.ID,
		DisplayName:   p.DisplayName,
		Age:           int32(p.Age),
		Profession:    p.Profession,
		PhotoRefs:     p.PhotoRefs,
		SeekingAgeMin: int32(p.SeekingAgeMin),
		SeekingAgeMax: int32(p.SeekingAgeMax),
	}
}

func toPBProfiles(ps []swipe.Profile) []*pb.Profile {
	out := make([]*pb.Profile, 0, len(ps))
	for _, p := range ps {
		out = append(out, toPBProfile(p))
	}
	return out
}

func settingsFromPB(req *pb.SaveSettingsRequest) swipe.Settings {
	return swipe.Settings{
		DisplayName:   req.DisplayName,
		Age:           intPtr(req.Age),
		Profession:    req.Profession,
		PhotoRefs:     req.PhotoRefs,
		SeekingAgeMin: intPtr(req.SeekingAgeMin),
		SeekingAgeMax: intPtr(req.SeekingAgeMax),
	}
}

func intPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}
