package model

import "fmt"

type ExerciseKind string

const (
	ExerciseBreathingTechniques ExerciseKind = "breathing_techniques"
	ExerciseStretchAndReach     ExerciseKind = "stretch_and_reach"
	ExerciseLightHands          ExerciseKind = "light_hands"
	ExerciseRhythmRecovery      ExerciseKind = "rhythm_recovery"
	ExerciseDrawShapes          ExerciseKind = "draw_shapes"
	ExerciseLineWalk            ExerciseKind = "line_walk"
	ExerciseBalloons            ExerciseKind = "balloons"
)

// ExerciseResult is implemented only by the record types in this file. The
// unexported method keeps the set closed.
type ExerciseResult interface {
	Kind() ExerciseKind
	GetSessionID() uint
	bindSession(sessionID uint)
}

// BindSession sets the owning session on a result record.
func BindSession(result ExerciseResult, sessionID uint) {
	result.bindSession(sessionID)
}

type ExerciseDefinition struct {
	Kind  ExerciseKind
	Label string
	New   func() ExerciseResult
}

// Ack is the confirmation message returned after a result is recorded.
func (d ExerciseDefinition) Ack() string {
	return d.Label + " record created"
}

var exerciseRegistry = []ExerciseDefinition{
	{Kind: ExerciseBreathingTechniques, Label: "Breathing technique", New: func() ExerciseResult { return &BreathingTechnique{} }},
	{Kind: ExerciseStretchAndReach, Label: "Stretch and reach", New: func() ExerciseResult { return &StretchAndReach{} }},
	{Kind: ExerciseLightHands, Label: "Light hands", New: func() ExerciseResult { return &LightHands{} }},
	{Kind: ExerciseRhythmRecovery, Label: "Rhythm recovery", New: func() ExerciseResult { return &RhythmRecovery{} }},
	{Kind: ExerciseDrawShapes, Label: "Draw shapes", New: func() ExerciseResult { return &DrawShapes{} }},
	{Kind: ExerciseLineWalk, Label: "Line walk", New: func() ExerciseResult { return &LineWalk{} }},
	{Kind: ExerciseBalloons, Label: "Balloons", New: func() ExerciseResult { return &Balloons{} }},
}

func ExerciseDefinitions() []ExerciseDefinition {
	defs := make([]ExerciseDefinition, len(exerciseRegistry))
	copy(defs, exerciseRegistry)
	return defs
}

func LookupExercise(kind ExerciseKind) (ExerciseDefinition, error) {
	for _, def := range exerciseRegistry {
		if def.Kind == kind {
			return def, nil
		}
	}
	return ExerciseDefinition{}, fmt.Errorf("unknown exercise %q", kind)
}

// ExerciseModels returns an empty record per exercise table, for migrations.
func ExerciseModels() []interface{} {
	models := make([]interface{}, 0, len(exerciseRegistry))
	for _, def := range exerciseRegistry {
		models = append(models, def.New())
	}
	return models
}

type BreathingTechnique struct {
	SessionID uint `json:"session_id" gorm:"primaryKey;autoIncrement:false"`

	PlayOrPass bool `json:"play_or_pass"`
	Breaths    int  `json:"breaths"`
}

func (BreathingTechnique) TableName() string      { return string(ExerciseBreathingTechniques) }
func (BreathingTechnique) Kind() ExerciseKind     { return ExerciseBreathingTechniques }
func (r BreathingTechnique) GetSessionID() uint   { return r.SessionID }
func (r *BreathingTechnique) bindSession(id uint) { r.SessionID = id }

type StretchAndReach struct {
	SessionID uint `json:"session_id" gorm:"primaryKey;autoIncrement:false"`

	PlayOrPass          bool   `json:"play_or_pass"`
	TotalStars          int    `json:"total_stars"`
	HighestLevel        int    `json:"highest_level"`
	MissedStarsLocation string `json:"missed_stars_location" gorm:"type:text"`
}

func (StretchAndReach) TableName() string      { return string(ExerciseStretchAndReach) }
func (StretchAndReach) Kind() ExerciseKind     { return ExerciseStretchAndReach }
func (r StretchAndReach) GetSessionID() uint   { return r.SessionID }
func (r *StretchAndReach) bindSession(id uint) { r.SessionID = id }

type LightHands struct {
	SessionID uint `json:"session_id" gorm:"primaryKey;autoIncrement:false"`

	PlayOrPass           bool `json:"play_or_pass"`
	TwoOneLeftScore      int  `json:"two_one_left_score"`
	TwoOneRightScore     int  `json:"two_one_right_score"`
	TwoTwoLeftScore      int  `json:"two_two_left_score"`
	TwoTwoRightScore     int  `json:"two_two_right_score"`
	ThreeThreeLeftScore  int  `json:"three_three_left_score"`
	ThreeThreeRightScore int  `json:"three_three_right_score"`
}

func (LightHands) TableName() string      { return string(ExerciseLightHands) }
func (LightHands) Kind() ExerciseKind     { return ExerciseLightHands }
func (r LightHands) GetSessionID() uint   { return r.SessionID }
func (r *LightHands) bindSession(id uint) { r.SessionID = id }

type RhythmRecovery struct {
	SessionID uint `json:"session_id" gorm:"primaryKey;autoIncrement:false"`

	PlayOrPass bool `json:"play_or_pass"`

	ThumbLeftTime   float64 `json:"thumb_left_time"`
	IndexLeftTime   float64 `json:"index_left_time"`
	MiddleLeftTime  float64 `json:"middle_left_time"`
	RingLeftTime    float64 `json:"ring_left_time"`
	LittleLeftTime  float64 `json:"little_left_time"`
	ThumbRightTime  float64 `json:"thumb_right_time"`
	IndexRightTime  float64 `json:"index_right_time"`
	MiddleRightTime float64 `json:"middle_right_time"`
	RingRightTime   float64 `json:"ring_right_time"`
	LittleRightTime float64 `json:"little_right_time"`

	ThumbLeftSkipped   bool `json:"thumb_left_skipped"`
	IndexLeftSkipped   bool `json:"index_left_skipped"`
	MiddleLeftSkipped  bool `json:"middle_left_skipped"`
	RingLeftSkipped    bool `json:"ring_left_skipped"`
	LittleLeftSkipped  bool `json:"little_left_skipped"`
	ThumbRightSkipped  bool `json:"thumb_right_skipped"`
	IndexRightSkipped  bool `json:"index_right_skipped"`
	MiddleRightSkipped bool `json:"middle_right_skipped"`
	RingRightSkipped   bool `json:"ring_right_skipped"`
	LittleRightSkipped bool `json:"little_right_skipped"`
}

func (RhythmRecovery) TableName() string      { return string(ExerciseRhythmRecovery) }
func (RhythmRecovery) Kind() ExerciseKind     { return ExerciseRhythmRecovery }
func (r RhythmRecovery) GetSessionID() uint   { return r.SessionID }
func (r *RhythmRecovery) bindSession(id uint) { r.SessionID = id }

type DrawShapes struct {
	SessionID uint `json:"session_id" gorm:"primaryKey;autoIncrement:false"`

	PlayOrPass      bool `json:"play_or_pass"`
	SmallLeftTime   int  `json:"small_left_time"`
	SmallRightTime  int  `json:"small_right_time"`
	MediumLeftTime  int  `json:"medium_left_time"`
	MediumRightTime int  `json:"medium_right_time"`
	LargeLeftTime   int  `json:"large_left_time"`
	LargeRightTime  int  `json:"large_right_time"`
}

func (DrawShapes) TableName() string      { return string(ExerciseDrawShapes) }
func (DrawShapes) Kind() ExerciseKind     { return ExerciseDrawShapes }
func (r DrawShapes) GetSessionID() uint   { return r.SessionID }
func (r *DrawShapes) bindSession(id uint) { r.SessionID = id }

type LineWalk struct {
	SessionID uint `json:"session_id" gorm:"primaryKey;autoIncrement:false"`

	PlayOrPass     bool    `json:"play_or_pass"`
	ForwardTime    float64 `json:"forward_time"`
	BackwardTime   float64 `json:"backward_time"`
	CrabRightTime  float64 `json:"crab_right_time"`
	CrabLeftTime   float64 `json:"crab_left_time"`
	OutOfLineCount int     `json:"out_of_line_count"`
}

func (LineWalk) TableName() string      { return string(ExerciseLineWalk) }
func (LineWalk) Kind() ExerciseKind     { return ExerciseLineWalk }
func (r LineWalk) GetSessionID() uint   { return r.SessionID }
func (r *LineWalk) bindSession(id uint) { r.SessionID = id }

type Balloons struct {
	SessionID uint `json:"session_id" gorm:"primaryKey;autoIncrement:false"`

	PlayOrPass      bool `json:"play_or_pass"`
	WaistLeftScore  int  `json:"waist_left_score"`
	WaistRightScore int  `json:"waist_right_score"`
	ChestLeftScore  int  `json:"chest_left_score"`
	ChestRightScore int  `json:"chest_right_score"`
	HeadLeftScore   int  `json:"head_left_score"`
	HeadRightScore  int  `json:"head_right_score"`
	KneesLeftScore  int  `json:"knees_left_score"`
	KneesRightScore int  `json:"knees_right_score"`
	FeetLeftScore   int  `json:"feet_left_score"`
	FeetRightScore  int  `json:"feet_right_score"`
}

func (Balloons) TableName() string      { return string(ExerciseBalloons) }
func (Balloons) Kind() ExerciseKind     { return ExerciseBalloons }
func (r Balloons) GetSessionID() uint   { return r.SessionID }
func (r *Balloons) bindSession(id uint) { r.SessionID = id }
