package dto

import (
	"fmt"

	"github.com/lac-hong-legacy/rehab_api/model"
)

// ExerciseRequest is the body of a create_<exercise> call. Fields are
// pointers so an omitted value fails validation instead of being stored as
// zero.
type ExerciseRequest interface {
	Validator
	ToModel() model.ExerciseResult
}

var exerciseRequests = map[model.ExerciseKind]func() ExerciseRequest{
	model.ExerciseBreathingTechniques: func() ExerciseRequest { return &CreateBreathingTechniqueRequest{} },
	model.ExerciseStretchAndReach:     func() ExerciseRequest { return &CreateStretchAndReachRequest{} },
	model.ExerciseLightHands:          func() ExerciseRequest { return &CreateLightHandsRequest{} },
	model.ExerciseRhythmRecovery:      func() ExerciseRequest { return &CreateRhythmRecoveryRequest{} },
	model.ExerciseDrawShapes:          func() ExerciseRequest { return &CreateDrawShapesRequest{} },
	model.ExerciseLineWalk:            func() ExerciseRequest { return &CreateLineWalkRequest{} },
	model.ExerciseBalloons:            func() ExerciseRequest { return &CreateBalloonsRequest{} },
}

func NewExerciseRequest(kind model.ExerciseKind) (ExerciseRequest, error) {
	newRequest, ok := exerciseRequests[kind]
	if !ok {
		return nil, fmt.Errorf("no request schema for exercise %q", kind)
	}
	return newRequest(), nil
}

func value[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

type CreateBreathingTechniqueRequest struct {
	PlayOrPass *bool `json:"play_or_pass" validate:"required" example:"true"`
	Breaths    *int  `json:"breaths" validate:"required" example:"12"`
}

func (r *CreateBreathingTechniqueRequest) Validate() error {
	return GetValidator().Struct(r)
}

func (r *CreateBreathingTechniqueRequest) ToModel() model.ExerciseResult {
	return &model.BreathingTechnique{
		PlayOrPass: value(r.PlayOrPass),
		Breaths:    value(r.Breaths),
	}
}

type CreateStretchAndReachRequest struct {
	PlayOrPass          *bool   `json:"play_or_pass" validate:"required" example:"true"`
	TotalStars          *int    `json:"total_stars" validate:"required" example:"9"`
	HighestLevel        *int    `json:"highest_level" validate:"required" example:"3"`
	MissedStarsLocation *string `json:"missed_stars_location" validate:"required" example:"[[1,2]]"`
}

func (r *CreateStretchAndReachRequest) Validate() error {
	return GetValidator().Struct(r)
}

func (r *CreateStretchAndReachRequest) ToModel() model.ExerciseResult {
	return &model.StretchAndReach{
		PlayOrPass:          value(r.PlayOrPass),
		TotalStars:          value(r.TotalStars),
		HighestLevel:        value(r.HighestLevel),
		MissedStarsLocation: value(r.MissedStarsLocation),
	}
}

type CreateLightHandsRequest struct {
	PlayOrPass           *bool `json:"play_or_pass" validate:"required"`
	TwoOneLeftScore      *int  `json:"two_one_left_score" validate:"required"`
	TwoOneRightScore     *int  `json:"two_one_right_score" validate:"required"`
	TwoTwoLeftScore      *int  `json:"two_two_left_score" validate:"required"`
	TwoTwoRightScore     *int  `json:"two_two_right_score" validate:"required"`
	ThreeThreeLeftScore  *int  `json:"three_three_left_score" validate:"required"`
	ThreeThreeRightScore *int  `json:"three_three_right_score" validate:"required"`
}

func (r *CreateLightHandsRequest) Validate() error {
	return GetValidator().Struct(r)
}

func (r *CreateLightHandsRequest) ToModel() model.ExerciseResult {
	return &model.LightHands{
		PlayOrPass:           value(r.PlayOrPass),
		TwoOneLeftScore:      value(r.TwoOneLeftScore),
		TwoOneRightScore:     value(r.TwoOneRightScore),
		TwoTwoLeftScore:      value(r.TwoTwoLeftScore),
		TwoTwoRightScore:     value(r.TwoTwoRightScore),
		ThreeThreeLeftScore:  value(r.ThreeThreeLeftScore),
		ThreeThreeRightScore: value(r.ThreeThreeRightScore),
	}
}

type CreateRhythmRecoveryRequest struct {
	PlayOrPass *bool `json:"play_or_pass" validate:"required"`

	ThumbLeftTime   *float64 `json:"thumb_left_time" validate:"required"`
	IndexLeftTime   *float64 `json:"index_left_time" validate:"required"`
	MiddleLeftTime  *float64 `json:"middle_left_time" validate:"required"`
	RingLeftTime    *float64 `json:"ring_left_time" validate:"required"`
	LittleLeftTime  *float64 `json:"little_left_time" validate:"required"`
	ThumbRightTime  *float64 `json:"thumb_right_time" validate:"required"`
	IndexRightTime  *float64 `json:"index_right_time" validate:"required"`
	MiddleRightTime *float64 `json:"middle_right_time" validate:"required"`
	RingRightTime   *float64 `json:"ring_right_time" validate:"required"`
	LittleRightTime *float64 `json:"little_right_time" validate:"required"`

	ThumbLeftSkipped   *bool `json:"thumb_left_skipped" validate:"required"`
	IndexLeftSkipped   *bool `json:"index_left_skipped" validate:"required"`
	MiddleLeftSkipped  *bool `json:"middle_left_skipped" validate:"required"`
	RingLeftSkipped    *bool `json:"ring_left_skipped" validate:"required"`
	LittleLeftSkipped  *bool `json:"little_left_skipped" validate:"required"`
	ThumbRightSkipped  *bool `json:"thumb_right_skipped" validate:"required"`
	IndexRightSkipped  *bool `json:"index_right_skipped" validate:"required"`
	MiddleRightSkipped *bool `json:"middle_right_skipped" validate:"required"`
	RingRightSkipped   *bool `json:"ring_right_skipped" validate:"required"`
	LittleRightSkipped *bool `json:"little_right_skipped" validate:"required"`
}

func (r *CreateRhythmRecoveryRequest) Validate() error {
	return GetValidator().Struct(r)
}

func (r *CreateRhythmRecoveryRequest) ToModel() model.ExerciseResult {
	return &model.RhythmRecovery{
		PlayOrPass: value(r.PlayOrPass),

		ThumbLeftTime:   value(r.ThumbLeftTime),
		IndexLeftTime:   value(r.IndexLeftTime),
		MiddleLeftTime:  value(r.MiddleLeftTime),
		RingLeftTime:    value(r.RingLeftTime),
		LittleLeftTime:  value(r.LittleLeftTime),
		ThumbRightTime:  value(r.ThumbRightTime),
		IndexRightTime:  value(r.IndexRightTime),
		MiddleRightTime: value(r.MiddleRightTime),
		RingRightTime:   value(r.RingRightTime),
		LittleRightTime: value(r.LittleRightTime),

		ThumbLeftSkipped:   value(r.ThumbLeftSkipped),
		IndexLeftSkipped:   value(r.IndexLeftSkipped),
		MiddleLeftSkipped:  value(r.MiddleLeftSkipped),
		RingLeftSkipped:    value(r.RingLeftSkipped),
		LittleLeftSkipped:  value(r.LittleLeftSkipped),
		ThumbRightSkipped:  value(r.ThumbRightSkipped),
		IndexRightSkipped:  value(r.IndexRightSkipped),
		MiddleRightSkipped: value(r.MiddleRightSkipped),
		RingRightSkipped:   value(r.RingRightSkipped),
		LittleRightSkipped: value(r.LittleRightSkipped),
	}
}

type CreateDrawShapesRequest struct {
	PlayOrPass      *bool `json:"play_or_pass" validate:"required"`
	SmallLeftTime   *int  `json:"small_left_time" validate:"required"`
	SmallRightTime  *int  `json:"small_right_time" validate:"required"`
	MediumLeftTime  *int  `json:"medium_left_time" validate:"required"`
	MediumRightTime *int  `json:"medium_right_time" validate:"required"`
	LargeLeftTime   *int  `json:"large_left_time" validate:"required"`
	LargeRightTime  *int  `json:"large_right_time" validate:"required"`
}

func (r *CreateDrawShapesRequest) Validate() error {
	return GetValidator().Struct(r)
}

func (r *CreateDrawShapesRequest) ToModel() model.ExerciseResult {
	return &model.DrawShapes{
		PlayOrPass:      value(r.PlayOrPass),
		SmallLeftTime:   value(r.SmallLeftTime),
		SmallRightTime:  value(r.SmallRightTime),
		MediumLeftTime:  value(r.MediumLeftTime),
		MediumRightTime: value(r.MediumRightTime),
		LargeLeftTime:   value(r.LargeLeftTime),
		LargeRightTime:  value(r.LargeRightTime),
	}
}

type CreateLineWalkRequest struct {
	PlayOrPass     *bool    `json:"play_or_pass" validate:"required" example:"true"`
	ForwardTime    *float64 `json:"forward_time" validate:"required" example:"14.2"`
	BackwardTime   *float64 `json:"backward_time" validate:"required" example:"17.8"`
	CrabRightTime  *float64 `json:"crab_right_time" validate:"required" example:"11.5"`
	CrabLeftTime   *float64 `json:"crab_left_time" validate:"required" example:"12.1"`
	OutOfLineCount *int     `json:"out_of_line_count" validate:"required" example:"2"`
}

func (r *CreateLineWalkRequest) Validate() error {
	return GetValidator().Struct(r)
}

func (r *CreateLineWalkRequest) ToModel() model.ExerciseResult {
	return &model.LineWalk{
		PlayOrPass:     value(r.PlayOrPass),
		ForwardTime:    value(r.ForwardTime),
		BackwardTime:   value(r.BackwardTime),
		CrabRightTime:  value(r.CrabRightTime),
		CrabLeftTime:   value(r.CrabLeftTime),
		OutOfLineCount: value(r.OutOfLineCount),
	}
}

type CreateBalloonsRequest struct {
	PlayOrPass      *bool `json:"play_or_pass" validate:"required"`
	WaistLeftScore  *int  `json:"waist_left_score" validate:"required"`
	WaistRightScore *int  `json:"waist_right_score" validate:"required"`
	ChestLeftScore  *int  `json:"chest_left_score" validate:"required"`
	ChestRightScore *int  `json:"chest_right_score" validate:"required"`
	HeadLeftScore   *int  `json:"head_left_score" validate:"required"`
	HeadRightScore  *int  `json:"head_right_score" validate:"required"`
	KneesLeftScore  *int  `json:"knees_left_score" validate:"required"`
	KneesRightScore *int  `json:"knees_right_score" validate:"required"`
	FeetLeftScore   *int  `json:"feet_left_score" validate:"required"`
	FeetRightScore  *int  `json:"feet_right_score" validate:"required"`
}

func (r *CreateBalloonsRequest) Validate() error {
	return GetValidator().Struct(r)
}

func (r *CreateBalloonsRequest) ToModel() model.ExerciseResult {
	return &model.Balloons{
		PlayOrPass:      value(r.PlayOrPass),
		WaistLeftScore:  value(r.WaistLeftScore),
		WaistRightScore: value(r.WaistRightScore),
		ChestLeftScore:  value(r.ChestLeftScore),
		ChestRightScore: value(r.ChestRightScore),
		HeadLeftScore:   value(r.HeadLeftScore),
		HeadRightScore:  value(r.HeadRightScore),
		KneesLeftScore:  value(r.KneesLeftScore),
		KneesRightScore: value(r.KneesRightScore),
		FeetLeftScore:   value(r.FeetLeftScore),
		FeetRightScore:  value(r.FeetRightScore),
	}
}
