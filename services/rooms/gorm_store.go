package rooms

import (
	models "Chipster/models/postgres"
	"Chipster/services/poker"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore keeps rooms in PostgreSQL through GORM
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Player columns rewritten when a seat already exists
var playerColumns = []string{
	"user_id", "name", "chips", "position", "is_dealer", "is_small_blind",
	"is_big_blind", "is_active", "current_bet", "total_bet",
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return poker.ErrRoomNotFound
	}
	return err
}

func (s *GormStore) CreateRoom(ctx context.Context, room *poker.Room, passwordHash string) (*poker.Room, error) {
	row, err := models.NewRoomRow(room, passwordHash)
	if err != nil {
		return nil, err
	}
	// BeforeCreate fills in the room code and the seats follow the row
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, fmt.Errorf("error creating room: %w", err)
	}
	return row.Snapshot()
}

func (s *GormStore) GetRoom(ctx context.Context, id string) (*poker.Room, error) {
	var row models.Room
	err := s.db.WithContext(ctx).
		Preload("Players", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&row, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return row.Snapshot()
}

func (s *GormStore) SaveRoom(ctx context.Context, room *poker.Room) error {
	row, err := models.NewRoomRow(room, "")
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Room{}).Where("id = ?", room.ID).Updates(row.StateColumns())
		if res.Error != nil {
			return fmt.Errorf("error updating room: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return poker.ErrRoomNotFound
		}

		// Seats that left the room
		ids := make([]string, len(row.Players))
		for i, p := range row.Players {
			ids[i] = p.ID
		}
		gone := tx.Where("room_id = ?", room.ID)
		if len(ids) > 0 {
			gone = gone.Where("id NOT IN ?", ids)
		}
		if err := gone.Delete(&models.Player{}).Error; err != nil {
			return fmt.Errorf("error removing players: %w", err)
		}

		if len(row.Players) == 0 {
			return nil
		}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(playerColumns),
		}).Create(&row.Players).Error
		if err != nil {
			return fmt.Errorf("error saving players: %w", err)
		}
		return nil
	})
}

func (s *GormStore) ListRooms(ctx context.Context) ([]*poker.Room, error) {
	var rows []models.Room
	err := s.db.WithContext(ctx).
		Preload("Players").
		Where("is_active = ?", true).
		Order("created_at desc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	list := make([]*poker.Room, 0, len(rows))
	for i := range rows {
		r, err := rows[i].Snapshot()
		if err != nil {
			return nil, err
		}
		list = append(list, r)
	}
	return list, nil
}

func (s *GormStore) SetPassword(ctx context.Context, id, passwordHash string) error {
	res := s.db.WithContext(ctx).Model(&models.Room{}).Where("id = ?", id).Update("password_hash", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return poker.ErrRoomNotFound
	}
	return nil
}

func (s *GormStore) PasswordHash(ctx context.Context, id string) (string, error) {
	var row models.Room
	if err := s.db.WithContext(ctx).Select("id", "password_hash").Take(&row, "id = ?", id).Error; err != nil {
		return "", notFound(err)
	}
	return row.PasswordHash, nil
}

func (s *GormStore) AppendAction(ctx context.Context, action *models.GameAction) error {
	return s.db.WithContext(ctx).Create(action).Error
}

func (s *GormStore) AppendResult(ctx context.Context, result *models.HandResult) error {
	return s.db.WithContext(ctx).Create(result).Error
}

func (s *GormStore) ListActions(ctx context.Context, roomID string) ([]models.GameAction, error) {
	if err := s.exists(ctx, roomID); err != nil {
		return nil, err
	}
	var actions []models.GameAction
	err := s.db.WithContext(ctx).Where("room_id = ?", roomID).Order("created_at").Find(&actions).Error
	return actions, err
}

func (s *GormStore) ListResults(ctx context.Context, roomID string) ([]models.HandResult, error) {
	if err := s.exists(ctx, roomID); err != nil {
		return nil, err
	}
	var results []models.HandResult
	err := s.db.WithContext(ctx).Where("room_id = ?", roomID).Order("created_at").Find(&results).Error
	return results, err
}

func (s *GormStore) exists(ctx context.Context, roomID string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Room{}).Where("id = ?", roomID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return poker.ErrRoomNotFound
	}
	return nil
}
