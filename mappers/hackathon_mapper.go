// file: mappers/hackathon_mapper.go
package mappers

import (
	"github.com/GIT-Pushers/Devs-sub000/dto"
	"github.com/GIT-Pushers/Devs-sub000/models"
)

func MapCreateReqToModel(req dto.CreateHackathonReq, organizer string) models.Hackathon {
	judges := make([]models.HackathonJudge, 0, len(req.Judges))
	for i, w := range req.Judges {
		judges = append(judges, models.HackathonJudge{
			JudgeWallet: w,
			Position:    uint(i + 1),
		})
	}
	return models.Hackathon{
		OrganizerWallet:         organizer,
		MetadataURI:             req.MetadataURI,
		SponsorshipEnd:          req.SponsorshipEnd,
		HackStart:               req.HackStart,
		HackEnd:                 req.HackEnd,
		StakeAmount:             req.StakeAmount,
		MinTeams:                req.MinTeams,
		MaxTeams:                req.MaxTeams,
		CreationFee:             req.Fee,
		MinSponsorshipThreshold: req.MinSponsorshipThreshold,
		Judges:                  judges,
	}
}

func MapRegToLeaderboardEntry(reg models.TeamRegistration) dto.LeaderboardEntryResp {
	return dto.LeaderboardEntryResp{
		Ranking:          reg.Ranking,
		TeamID:           reg.TeamID,
		JudgeScore:       reg.JudgeScore,
		ParticipantScore: reg.ParticipantScore,
		AIScore:          reg.AIScore,
		FinalScore:       reg.FinalScore,
		StakerWallet:     reg.StakerWallet,
	}
}
