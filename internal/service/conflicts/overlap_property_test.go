package conflicts

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	"github.com/m04kA/SMC-ChefReservationService/pkg/types"
)

type span struct {
	Start, Length int
}

func genSpan() gopter.Gen {
	return gopter.CombineGens(
		gen.IntRange(0, 21*60),
		gen.IntRange(1, 120),
	).Map(func(v []interface{}) span {
		return span{Start: v[0].(int), Length: v[1].(int)}
	})
}

func (s span) window() domain.TimeWindow {
	start, _ := types.FromMinutes(s.Start)
	end, _ := types.FromMinutes(s.Start + s.Length)
	return domain.TimeWindow{Date: eventDay, Start: start, End: end}
}

// Жадно принимаем окна, отклоняя те, что пересекаются с уже принятыми.
// Принятые окна попарно не пересекаются, и каждое отклонённое пересекается хотя бы с одним принятым.
func TestOverlapping_AcceptedScheduleNeverOverlaps(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("accepted windows are pairwise disjoint", prop.ForAll(
		func(spans []span) bool {
			accepted := make([]domain.ReservationRef, 0)
			for i, s := range spans {
				w := s.window()
				if len(Overlapping(accepted, w)) > 0 {
					continue
				}
				accepted = append(accepted, domain.ReservationRef{Kind: domain.ReservationKindBooking, ID: int64(i), Window: w})
			}

			for i := range accepted {
				for j := range accepted {
					if i != j && accepted[i].Window.Overlaps(accepted[j].Window) {
						return false
					}
				}
			}
			return true
		},
		gen.SliceOf(genSpan()),
	))

	properties.Property("overlap is symmetric and touching windows never overlap", prop.ForAll(
		func(a, b span) bool {
			wa, wb := a.window(), b.window()
			if wa.Overlaps(wb) != wb.Overlaps(wa) {
				return false
			}
			touching := a.Start+a.Length == b.Start || b.Start+b.Length == a.Start
			return !touching || !wa.Overlaps(wb)
		},
		genSpan(), genSpan(),
	))

	properties.TestingRun(t)
}
