package conflicts

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	"github.com/m04kA/SMC-ChefReservationService/pkg/dbmetrics"
)

// Detector проверяет пересечение окна с активными резервациями шефа
// (бронирования и визиты) одним запросом по chef_id + дате
type Detector struct {
	repo    ScheduleRepository
	metrics Metrics
	logger  Logger
}

// NewDetector создает новый экземпляр Detector
func NewDetector(repo ScheduleRepository, metrics Metrics, logger Logger) *Detector {
	return &Detector{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
	}
}

// Lock сериализует все операции над расписанием шефа до конца текущей транзакции.
// Проверка конфликтов и вставка резервации должны выполняться под этой блокировкой.
func (d *Detector) Lock(ctx context.Context, chefID int64) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return ErrNoTransaction
	}
	if err := d.repo.LockChef(ctx, chefID); err != nil {
		return fmt.Errorf("%w: Lock - chef_id=%d: %w", ErrInternal, chefID, err)
	}
	return nil
}

// FindConflicts возвращает активные резервации шефа, пересекающиеся с окном
func (d *Detector) FindConflicts(ctx context.Context, chefID int64, window domain.TimeWindow) ([]domain.ReservationRef, error) {
	existing, err := d.repo.ListActiveByChefAndDate(ctx, chefID, window.Date)
	if err != nil {
		d.logger.Error("FindConflicts: failed to load schedule chef_id=%d date=%s: %v",
			chefID, window.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: FindConflicts - load schedule: %w", ErrInternal, err)
	}

	conflicts := Overlapping(existing, window)
	for _, c := range conflicts {
		if d.metrics != nil {
			d.metrics.RecordConflict(string(c.Kind))
		}
	}
	return conflicts, nil
}

// HasConflict возвращает true, если окно пересекается хотя бы с одной активной резервацией
func (d *Detector) HasConflict(ctx context.Context, chefID int64, window domain.TimeWindow) (bool, error) {
	conflicts, err := d.FindConflicts(ctx, chefID, window)
	if err != nil {
		return false, err
	}
	return len(conflicts) > 0, nil
}

// Overlapping отбирает из refs те, что пересекаются с window (полуоткрытые интервалы).
// Касание границами конфликтом не считается.
func Overlapping(refs []domain.ReservationRef, window domain.TimeWindow) []domain.ReservationRef {
	result := make([]domain.ReservationRef, 0)
	for _, ref := range refs {
		if ref.Window.Overlaps(window) {
			result = append(result, ref)
		}
	}
	return result
}
