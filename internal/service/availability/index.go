package availability

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/eduschools/EduSchools-BookingService/internal/domain"
	"github.com/eduschools/EduSchools-BookingService/pkg/metrics"
)

// snapshot неизменяемый набор ключей занятых слотов
type snapshot struct {
	keys     map[string]struct{}
	loadedAt time.Time
}

// Index in-memory индекс занятых слотов
// Хранилище остается источником истины, индекс только кэш для чтения
type Index struct {
	store   SlotLister
	metrics MetricsRecorder
	logger  Logger
	now     func() time.Time

	current atomic.Pointer[snapshot]
	// reloadMu сериализует загрузки: вызвавший Reload всегда видит выборку, начатую после вызова
	reloadMu sync.Mutex
}

// NewIndex создает пустой (не загруженный) индекс
func NewIndex(store SlotLister, metrics MetricsRecorder, logger Logger) *Index {
	return &Index{
		store:   store,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
}

// Load загружает занятые слоты из хранилища и атомарно заменяет набор
// При ошибке возвращает ErrStoreUnavailable, прежний набор остается доступным
func (i *Index) Load(ctx context.Context) error {
	i.reloadMu.Lock()
	defer i.reloadMu.Unlock()

	slots, err := i.store.ListBookedSlots(ctx)
	if err != nil {
		i.metrics.RecordIndexReload(metrics.ResultFailure, i.Size())
		if i.Loaded() {
			i.logger.Warn("Index.Load: store unavailable, keeping %d slots loaded at %s: %v",
				i.Size(), i.LoadedAt().Format(time.RFC3339), err)
		} else {
			i.logger.Error("Index.Load: store unavailable, index is empty: %v", err)
		}
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	keys := make(map[string]struct{}, len(slots))
	for _, slot := range slots {
		keys[slot.Key()] = struct{}{}
	}

	i.current.Store(&snapshot{keys: keys, loadedAt: i.now()})
	i.metrics.RecordIndexReload(metrics.ResultSuccess, len(keys))
	i.logger.Info("Index.Load: loaded %d booked slots", len(keys))

	return nil
}

// Reload повторная загрузка, семантика как у Load
func (i *Index) Reload(ctx context.Context) error {
	return i.Load(ctx)
}

// IsBooked true, если слот занят по последнему загруженному набору
func (i *Index) IsBooked(slot domain.Slot) bool {
	snap := i.current.Load()
	if snap == nil {
		return false
	}
	_, ok := snap.keys[slot.Key()]
	return ok
}

// Loaded true, если хотя бы одна загрузка прошла успешно
func (i *Index) Loaded() bool {
	return i.current.Load() != nil
}

// Size количество занятых слотов в индексе
func (i *Index) Size() int {
	snap := i.current.Load()
	if snap == nil {
		return 0
	}
	return len(snap.keys)
}

// LoadedAt время последней успешной загрузки
func (i *Index) LoadedAt() time.Time {
	snap := i.current.Load()
	if snap == nil {
		return time.Time{}
	}
	return snap.loadedAt
}

// SlotsForDate статусы всех часовых слотов на дату, по одному снимку индекса
func (i *Index) SlotsForDate(date time.Time) []domain.SlotStatus {
	snap := i.current.Load()

	statuses := make([]domain.SlotStatus, 0, len(domain.TimeSlots))
	for _, t := range domain.TimeSlots {
		booked := false
		if snap != nil {
			_, booked = snap.keys[domain.SlotKey(domain.StartOfDay(date), t)]
		}
		statuses = append(statuses, domain.SlotStatus{Time: t, Booked: booked})
	}
	return statuses
}
