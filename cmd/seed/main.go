package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nagoyameshi/backend/config"
	"github.com/nagoyameshi/backend/internal/database"
	"github.com/nagoyameshi/backend/internal/models"
)

var categoryNames = []string{"味噌カツ", "ひつまぶし", "手羽先", "きしめん", "味噌煮込みうどん", "台湾ラーメン", "天むす", "あんかけスパ"}

type seedRestaurant struct {
	name, category, description, address, holiday string
	lowest, highest, seats                        int
	opening, closing                              string
}

var restaurants = []seedRestaurant{
	{"矢場町 かつ亭", "味噌カツ", "甘辛い八丁味噌だれの名物かつ。", "愛知県名古屋市中区大須3-1-1", "月曜日", 1200, 2500, 40, "11:00", "21:00"},
	{"熱田 うなぎ処", "ひつまぶし", "備長炭で焼き上げる老舗のひつまぶし。", "愛知県名古屋市熱田区神宮2-2-2", "水曜日", 3500, 6000, 60, "11:00", "20:30"},
	{"栄 手羽先酒場", "手羽先", "胡椒たっぷりの元祖手羽先。", "愛知県名古屋市中区栄4-3-3", "", 1500, 3500, 80, "17:00", "23:30"},
	{"名駅 きしめん亭", "きしめん", "駅ホームで愛される平打ち麺。", "愛知県名古屋市中村区名駅1-1-4", "", 600, 1200, 20, "07:00", "21:00"},
	{"大須 煮込み屋", "味噌煮込みうどん", "土鍋で煮込む硬めのうどん。", "愛知県名古屋市中区大須2-5-5", "火曜日", 1100, 2000, 30, "11:30", "22:00"},
	{"今池 台湾麺", "台湾ラーメン", "唐辛子とニンニクの効いた一杯。", "愛知県名古屋市千種区今池5-6-6", "木曜日", 800, 1500, 35, "11:30", "23:00"},
	{"伏見 天むす本舗", "天むす", "小ぶりの海老天を包んだおむすび。", "愛知県名古屋市中区錦2-7-7", "日曜日", 700, 1500, 12, "10:00", "19:00"},
	{"金山 あんかけ食堂", "あんかけスパ", "太麺にスパイシーなあんをかけて。", "愛知県名古屋市中区金山1-8-8", "", 900, 1800, 25, "11:00", "21:30"},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.RunMigrations(db, database.Migrations()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		categories, err := seedCategories(tx)
		if err != nil {
			return err
		}
		if err := seedRestaurants(tx, categories); err != nil {
			return err
		}
		return seedUsers(tx)
	})
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seed data loaded")
}

func seedCategories(tx *gorm.DB) (map[string]uint, error) {
	ids := make(map[string]uint, len(categoryNames))
	for _, name := range categoryNames {
		var c models.Category
		if err := tx.Where(models.Category{CategoryName: name}).FirstOrCreate(&c).Error; err != nil {
			return nil, fmt.Errorf("seed category %s: %w", name, err)
		}
		ids[name] = c.ID
	}
	log.Printf("Seeded %d categories", len(ids))
	return ids, nil
}

func seedRestaurants(tx *gorm.DB, categories map[string]uint) error {
	for i, s := range restaurants {
		categoryID := categories[s.category]
		r := models.Restaurant{
			Name:            s.name,
			Description:     s.description,
			LowestPrice:     s.lowest,
			HighestPrice:    s.highest,
			PostalCode:      fmt.Sprintf("460-00%02d", i+1),
			Address:         s.address,
			PhoneNumber:     fmt.Sprintf("052-000-%04d", i+1),
			OpeningTime:     s.opening,
			ClosingTime:     s.closing,
			RegularHoliday:  s.holiday,
			SeatingCapacity: s.seats,
			CategoryID:      &categoryID,
		}
		if err := tx.Omit("Category").Where("name = ?", s.name).FirstOrCreate(&r).Error; err != nil {
			return fmt.Errorf("seed restaurant %s: %w", s.name, err)
		}
	}
	log.Printf("Seeded %d restaurants", len(restaurants))
	return nil
}

func seedUsers(tx *gorm.DB) error {
	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "password"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	users := []models.User{
		{Name: "侍 管理者", Furigana: "サムライ カンリシャ", Email: "admin@example.com", Role: models.RoleAdmin},
		{Name: "侍 太郎", Furigana: "サムライ タロウ", Email: "taro.samurai@example.com", Role: models.RoleGeneral},
	}
	for _, u := range users {
		u.Password = string(hash)
		u.PostalCode = "460-0002"
		u.Address = "愛知県名古屋市中区丸の内1-1-1"
		u.PhoneNumber = "090-1234-5678"
		u.Enabled = true
		if err := tx.Where("email = ?", u.Email).FirstOrCreate(&u).Error; err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
	}
	log.Printf("Seeded %d users (password from SEED_PASSWORD)", len(users))
	return nil
}
