// Package codec translates rules results to and from the JSON shapes used at
// the HTTP and agent boundary.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/character"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/check"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/concentration"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/dice"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/inventory"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/progression"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/ruleset"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/spells"
)

// RollRequest is the body of a dice roll request.
type RollRequest struct {
	Notation      string `json:"notation"`
	AdvantageType string `json:"advantage_type,omitempty"`
}

// Advantage parses AdvantageType; empty means normal.
func (r RollRequest) Advantage() (dice.AdvantageState, error) {
	return dice.ParseAdvantage(r.AdvantageType)
}

// RollResponse is the legacy roll result shape.
type RollResponse struct {
	Rolls         []int  `json:"rolls"`
	Modifier      int    `json:"modifier"`
	Total         int    `json:"total"`
	Notation      string `json:"notation"`
	AdvantageType string `json:"advantage_type"`
}

// FromRoll converts a dice result.
func FromRoll(r dice.RollResult) RollResponse {
	rolls := r.Rolls
	if rolls == nil {
		rolls = []int{}
	}
	return RollResponse{
		Rolls:         rolls,
		Modifier:      r.Modifier,
		Total:         r.Total,
		Notation:      r.Notation,
		AdvantageType: r.Advantage.String(),
	}
}

// CheckResponse is an ability or skill check result.
type CheckResponse struct {
	RollResponse
	Skill string `json:"skill,omitempty"`
}

// SaveResponse is a saving throw result.
type SaveResponse struct {
	RollResponse
	DC      int  `json:"dc"`
	Success bool `json:"success"`
}

// FromSave converts a saving throw result.
func FromSave(s check.SaveResult) SaveResponse {
	return SaveResponse{RollResponse: FromRoll(s.Roll), DC: s.DC, Success: s.Success}
}

// AttackResponse is an attack roll with optional damage.
type AttackResponse struct {
	Attack         RollResponse  `json:"attack"`
	Natural        int           `json:"natural"`
	TargetAC       int           `json:"target_ac"`
	IsHit          bool          `json:"is_hit"`
	IsCriticalHit  bool          `json:"is_critical_hit"`
	IsCriticalMiss bool          `json:"is_critical_miss"`
	Damage         *RollResponse `json:"damage,omitempty"`
}

// FromAttack converts an attack result. damage is included only on a hit.
func FromAttack(a check.AttackResult, damage dice.RollResult) AttackResponse {
	out := AttackResponse{
		Attack:         FromRoll(a.Roll),
		Natural:        a.Natural,
		TargetAC:       a.TargetAC,
		IsHit:          a.IsHit,
		IsCriticalHit:  a.IsCriticalHit,
		IsCriticalMiss: a.IsCriticalMiss,
	}
	if a.IsHit && damage.Notation != "" {
		d := FromRoll(damage)
		out.Damage = &d
	}
	return out
}

// SlotsResponse reports a slot table and what remains of it.
type SlotsResponse struct {
	Class     string       `json:"class"`
	Level     int          `json:"level"`
	Archetype string       `json:"archetype"`
	Current   spells.Slots `json:"current"`
	Max       spells.Slots `json:"max"`
	Remaining int          `json:"remaining"`
}

// LevelResponse reports the progression state reached by an experience total.
type LevelResponse struct {
	Experience       int  `json:"experience"`
	Level            int  `json:"level"`
	ProficiencyBonus int  `json:"proficiency_bonus"`
	XPForNextLevel   int  `json:"xp_for_next_level,omitempty"`
	XPNeeded         int  `json:"xp_needed"`
	HasNextLevel     bool `json:"has_next_level"`
	ASIAvailable     int  `json:"asi_available"`
	ASIRemaining     int  `json:"asi_remaining"`
}

// FromLevel converts a progression lookup.
func FromLevel(xp, proficiencyBonus int, info progression.LevelInfo, asi progression.ASIStatus) LevelResponse {
	return LevelResponse{
		Experience:       xp,
		Level:            info.Level,
		ProficiencyBonus: proficiencyBonus,
		XPForNextLevel:   info.XPForNextLevel,
		XPNeeded:         info.XPNeeded,
		HasNextLevel:     info.HasNextLevel,
		ASIAvailable:     asi.AvailableAtCurrentLevel,
		ASIRemaining:     asi.Remaining,
	}
}

// EncumbranceResponse reports a character's carrying state.
type EncumbranceResponse struct {
	Strength     int            `json:"strength"`
	Capacity     float64        `json:"capacity"`
	PushDragLift float64        `json:"push_drag_lift"`
	TotalWeight  float64        `json:"total_weight"`
	Encumbrance  string         `json:"encumbrance"`
	StatEffects  map[string]int `json:"stat_effects"`
}

// FromCharacterEncumbrance summarises c's carried weight against its effective strength.
func FromCharacterEncumbrance(c character.Character) EncumbranceResponse {
	str := c.EffectiveAbilities().Strength
	return EncumbranceResponse{
		Strength:     str,
		Capacity:     inventory.CarryingCapacity(str),
		PushDragLift: inventory.PushDragLift(str),
		TotalWeight:  c.CarriedWeight(),
		Encumbrance:  c.Encumbrance().String(),
		StatEffects:  inventory.AggregateStatEffects(c.Equipped),
	}
}

// ConcentrationResponse is a concentration check and the state it leaves.
type ConcentrationResponse struct {
	DC         int                 `json:"dc"`
	Roll       *RollResponse       `json:"roll,omitempty"`
	Maintained bool                `json:"maintained"`
	State      concentration.State `json:"state"`
}

// FromConcentration converts a concentration check. Roll is omitted when no save was made.
func FromConcentration(r concentration.CheckResult, s concentration.State) ConcentrationResponse {
	out := ConcentrationResponse{DC: r.DC, Maintained: r.Maintained, State: s}
	if r.Roll.Notation != "" {
		roll := FromRoll(r.Roll)
		out.Roll = &roll
	}
	return out
}

// ErrorResponse is the legacy error shape.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FromError wraps err in the legacy error shape.
//
// Precondition: err must be non-nil.
func FromError(err error) ErrorResponse {
	return ErrorResponse{Error: err.Error()}
}

// StatusFor maps a domain error to the HTTP status the boundary reports.
//
// Postcondition: Returns 200 for nil and 500 for errors outside the domain taxonomy.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, inventory.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, inventory.ErrSlotOccupied),
		errors.Is(err, inventory.ErrSlotEmpty),
		errors.Is(err, spells.ErrNoSlotsAvailable):
		return http.StatusConflict
	case errors.Is(err, dice.ErrMalformedNotation),
		errors.Is(err, dice.ErrUnsupportedNotation),
		errors.Is(err, dice.ErrInvalidAdvantage),
		errors.Is(err, ruleset.ErrLevelOutOfRange),
		errors.Is(err, ruleset.ErrUnknownClass),
		errors.Is(err, spells.ErrInvalidSlotLevel),
		errors.Is(err, inventory.ErrNotEquippable),
		errors.Is(err, inventory.ErrUnknownSlot),
		errors.Is(err, check.ErrUnknownSkill),
		errors.Is(err, check.ErrUnknownAbility),
		errors.Is(err, progression.ErrInvalidHitDie),
		errors.Is(err, progression.ErrNegativeExperience),
		errors.Is(err, progression.ErrNegativeCount),
		errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ErrBadRequest marks a request body that could not be decoded.
var ErrBadRequest = errors.New("bad request")

// Decode reads one JSON value from r into v, rejecting unknown fields.
//
// Postcondition: decoding failures wrap ErrBadRequest.
func Decode(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return nil
}

// Encode writes v to w as indented JSON followed by a newline.
func Encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
