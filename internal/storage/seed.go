package storage

import (
	"fmt"
	"time"

	"munasabat-backend/models"
)

// Seed functions return fresh copies so callers can never mutate the
// baseline dataset through a shared slice.

func seedReviews() []models.Review {
	return []models.Review{
		{ID: "r1", UserName: "سارة", Rating: 5, Comment: "خدمة ممتازة وأنصح الجميع بها!", Date: "2023-10-15"},
		{ID: "r2", UserName: "أحمد", Rating: 4, Comment: "جيد جداً ولكن السعر مرتفع قليلاً.", Date: "2023-11-02"},
	}
}

func SeedVendors() []models.Vendor {
	return []models.Vendor{
		{
			ID:            "v1",
			Name:          "قاعة ليالي",
			Category:      models.CategoryVenue,
			SubCategory:   "قاعات أفراح",
			Region:        models.RegionSouth,
			City:          "بئر السبع",
			AddressText:   "طريق الخليل",
			Latitude:      31.25,
			Longitude:     34.79,
			WazeURL:       "https://waze.com",
			Description:   "قاعة ليالي للأفراح والمناسبات السعيدة.",
			MinPrice:      3000,
			MaxPrice:      3000,
			Phone:         "0501234567",
			Whatsapp:      "972501234567",
			RatingAverage: 4.8,
			RatingCount:   120,
			HeroImageURL:  "https://images.unsplash.com/photo-1519167758481-83f550bb49b3?auto=format&fit=crop&q=80&w=800",
			GalleryImages: []string{},
			Reviews:       seedReviews(),
		},
		{
			ID:            "v2",
			Name:          "قاعة الماس",
			Category:      models.CategoryVenue,
			SubCategory:   "قاعات أفراح",
			Region:        models.RegionSouth,
			City:          "رهط",
			AddressText:   "المنطقة الصناعية",
			Latitude:      31.39,
			Longitude:     34.75,
			WazeURL:       "https://waze.com",
			Description:   "فخامة الاسم تكفي، قاعة الماس.",
			MinPrice:      2800,
			MaxPrice:      2800,
			Phone:         "0521112233",
			Whatsapp:      "972521112233",
			RatingAverage: 4.5,
			RatingCount:   85,
			HeroImageURL:  "https://images.unsplash.com/photo-1469334031218-e382a71b716b?auto=format&fit=crop&q=80&w=800",
			GalleryImages: []string{},
			Reviews:       []models.Review{},
		},
		{
			ID:            "v3",
			Name:          "تصوير حفلات - أحمد",
			Category:      models.CategoryPhotography,
			SubCategory:   "تصوير فوتوغرافي",
			Region:        models.RegionNorth,
			City:          "طمرة",
			AddressText:   "حي الجبل",
			Latitude:      32.85,
			Longitude:     35.2,
			WazeURL:       "https://waze.com",
			Description:   "توثيق لحظاتكم الجميلة بأعلى دقة.",
			MinPrice:      1200,
			MaxPrice:      1200,
			Phone:         "0525556666",
			Whatsapp:      "972525556666",
			RatingAverage: 4.9,
			RatingCount:   40,
			HeroImageURL:  "https://images.unsplash.com/photo-1516035069371-29a1b244cc32?auto=format&fit=crop&q=80&w=800",
			GalleryImages: []string{},
			Reviews:       []models.Review{},
		},
		{
			ID:            "v4",
			Name:          "فيديو - ستوديو فلاش",
			Category:      models.CategoryPhotography,
			SubCategory:   "تصوير فيديو",
			Region:        models.RegionCenter,
			City:          "الطيبة",
			AddressText:   "وسط البلد",
			Latitude:      32.26,
			Longitude:     35.0,
			WazeURL:       "https://waze.com",
			Description:   "تصوير فيديو سينمائي ومونتاج احترافي.",
			MinPrice:      1500,
			MaxPrice:      1500,
			Phone:         "0533334444",
			Whatsapp:      "972533334444",
			RatingAverage: 4.7,
			RatingCount:   60,
			HeroImageURL:  "https://images.unsplash.com/photo-1533512930330-4ac257c86793?auto=format&fit=crop&q=80&w=800",
			GalleryImages: []string{},
			Reviews:       []models.Review{},
		},
		{
			ID:            "v5",
			Name:          "DJ سامر",
			Category:      models.CategoryEntertainment,
			SubCategory:   "دي جي (DJ)",
			Region:        models.RegionSouth,
			City:          "تل السبع",
			AddressText:   "-",
			Latitude:      31.2,
			Longitude:     34.8,
			WazeURL:       "https://waze.com",
			Description:   "أقوى الحفلات والأجواء.",
			MinPrice:      700,
			MaxPrice:      700,
			Phone:         "0544445555",
			Whatsapp:      "972544445555",
			RatingAverage: 4.6,
			RatingCount:   25,
			HeroImageURL:  "https://images.unsplash.com/photo-1516280440614-6697288d5d38?auto=format&fit=crop&q=80&w=800",
			GalleryImages: []string{},
			Reviews:       []models.Review{},
		},
		{
			ID:            "v6",
			Name:          "بوفيه شهي",
			Category:      models.CategoryFood,
			SubCategory:   "بوفيه مفتوح",
			Region:        models.RegionCenter,
			City:          "يافا",
			AddressText:   "-",
			Latitude:      32.05,
			Longitude:     34.75,
			WazeURL:       "https://waze.com",
			Description:   "أطيب المأكولات الشرقية.",
			MinPrice:      25,
			MaxPrice:      25,
			Phone:         "0522223344",
			Whatsapp:      "972522223344",
			RatingAverage: 4.8,
			RatingCount:   150,
			HeroImageURL:  "https://images.unsplash.com/photo-1555244162-803834f70033?auto=format&fit=crop&q=80&w=800",
			GalleryImages: []string{},
			Reviews:       []models.Review{},
		},
		{
			ID:            "v7",
			Name:          "ملكة الورد",
			Category:      models.CategoryDecoration,
			SubCategory:   "تنسيق زهور",
			Region:        models.RegionSouth,
			City:          "شقيب السلام",
			AddressText:   "-",
			Latitude:      31.2,
			Longitude:     34.8,
			WazeURL:       "https://waze.com",
			Description:   "تزيين قاعات وسيارات زفاف.",
			MinPrice:      500,
			MaxPrice:      2000,
			Phone:         "0505556677",
			Whatsapp:      "972505556677",
			RatingAverage: 4.9,
			RatingCount:   30,
			HeroImageURL:  "https://images.unsplash.com/photo-1523438885200-e635ba2c371e?auto=format&fit=crop&q=80&w=800",
			GalleryImages: []string{},
			Reviews:       []models.Review{},
		},
		{
			ID:            "v8",
			Name:          "لمسة جمال",
			Category:      models.CategoryBeauty,
			SubCategory:   "صالونات وتجميل",
			Region:        models.RegionSouth,
			City:          "رهط",
			AddressText:   "الحي 2",
			Latitude:      31.39,
			Longitude:     34.75,
			WazeURL:       "https://waze.com",
			Description:   "أحدث قصات الشعر والمكياج.",
			MinPrice:      200,
			MaxPrice:      800,
			Phone:         "0529876543",
			Whatsapp:      "972529876543",
			RatingAverage: 4.7,
			RatingCount:   55,
			HeroImageURL:  "https://images.unsplash.com/photo-1522337360788-8b13dee7a37e?auto=format&fit=crop&q=80&w=800",
			GalleryImages: []string{},
			Reviews:       []models.Review{},
		},
	}
}

func SeedDresses() []models.Dress {
	return []models.Dress{
		{
			ID:           "d9",
			VendorID:     "v9",
			Title:        "فستان ملكة",
			Type:         "evening",
			ForSale:      true,
			ForRent:      false,
			PriceSale:    250,
			Size:         "L",
			Color:        "أسود",
			Region:       models.RegionSouth,
			City:         "بئر السبع",
			MainImageURL: "https://images.unsplash.com/photo-1566174053879-31528523f8ae?auto=format&fit=crop&q=80&w=600",
			Description:  "فستان سهرة أنيق بحالة ممتازة.",
			Reviews:      []models.Review{},
		},
		{
			ID:           "d10",
			VendorID:     "v10",
			Title:        "فستان زفاف",
			Type:         "wedding",
			ForSale:      true,
			ForRent:      true,
			PriceSale:    1800,
			PriceRent:    1000,
			Size:         "38",
			Color:        "أبيض",
			Region:       models.RegionNorth,
			City:         "سخنين",
			MainImageURL: "https://images.unsplash.com/photo-1594552072238-b8a33785b261?auto=format&fit=crop&q=80&w=600",
			Description:  "فستان زفاف ملكي مع طرحة.",
			Reviews:      []models.Review{},
		},
	}
}

// SeedBundles generates three bundles (economy, standard, luxury) for every
// occasion type, 21 in total.
func SeedBundles() []models.Bundle {
	bundles := make([]models.Bundle, 0, len(models.EventTypes)*3)
	id := 1

	for _, occasion := range models.EventTypes {
		economyLabel := "مناسبة"
		if occasion == models.EventWedding {
			economyLabel = "زفاف"
		} else if occasion == models.EventEngagement {
			economyLabel = "خطوبة"
		}
		standardLabel := "مناسبة"
		if occasion == models.EventWedding {
			standardLabel = "زفاف"
		}

		bundles = append(bundles, models.Bundle{
			ID:               fmt.Sprintf("p%d", id),
			Title:            fmt.Sprintf("باقة %s اقتصادية", economyLabel),
			OccasionType:     occasion,
			Description:      "باقة توفيرية تشمل الأساسيات لإقامة مناسبة جميلة وبسعر معقول.",
			Price:            5000,
			IncludedServices: []string{"قاعة صغيرة/منزلية", "ضيافة خفيفة", "تصوير بسيط", "سماعات"},
			Images:           []string{"https://images.unsplash.com/photo-1519225468359-2996bc01c083?auto=format&fit=crop&q=80&w=800"},
			City:             "بئر السبع",
			Region:           models.RegionSouth,
			Latitude:         31.25,
			Longitude:        34.79,
			WazeURL:          "https://waze.com",
			RatingAverage:    4.2,
			RatingCount:      10,
			Reviews:          []models.Review{},
			HeroImageURL:     "https://images.unsplash.com/photo-1519225468359-2996bc01c083?auto=format&fit=crop&q=80&w=800",
		})
		id++

		bundles = append(bundles, models.Bundle{
			ID:               fmt.Sprintf("p%d", id),
			Title:            fmt.Sprintf("باقة %s مميزة", standardLabel),
			OccasionType:     occasion,
			Description:      "الخيار الأفضل الذي يجمع بين الفخامة والسعر المناسب.",
			Price:            15000,
			IncludedServices: []string{"قاعة متوسطة", "بوفيه عشاء", "تصوير فيديو وفوتو", "DJ محترف", "زينة"},
			Images:           []string{"https://images.unsplash.com/photo-1511795409834-ef04bbd61622?auto=format&fit=crop&q=80&w=800"},
			City:             "الناصرة",
			Region:           models.RegionNorth,
			Latitude:         32.7,
			Longitude:        35.3,
			WazeURL:          "https://waze.com",
			RatingAverage:    4.8,
			RatingCount:      35,
			Reviews:          []models.Review{},
			HeroImageURL:     "https://images.unsplash.com/photo-1511795409834-ef04bbd61622?auto=format&fit=crop&q=80&w=800",
		})
		id++

		bundles = append(bundles, models.Bundle{
			ID:               fmt.Sprintf("p%d", id),
			Title:            fmt.Sprintf("باقة %s ملكية", standardLabel),
			OccasionType:     occasion,
			Description:      "كل ما تحلم به لمناسبة لا تنسى، فخامة بلا حدود.",
			Price:            45000,
			IncludedServices: []string{"قاعة فخمة VIP", "بوفيه فاخر جداً", "تصوير سينمائي", "فرقة موسيقية", "ليموزين", "ديكور خاص"},
			Images:           []string{"https://images.unsplash.com/photo-1519167758481-83f550bb49b3?auto=format&fit=crop&q=80&w=800"},
			City:             "يافا",
			Region:           models.RegionCenter,
			Latitude:         32.05,
			Longitude:        34.75,
			WazeURL:          "https://waze.com",
			RatingAverage:    5.0,
			RatingCount:      12,
			Reviews:          []models.Review{},
			HeroImageURL:     "https://images.unsplash.com/photo-1519167758481-83f550bb49b3?auto=format&fit=crop&q=80&w=800",
		})
		id++
	}

	return bundles
}

func SeedEvents() []models.EventModel {
	return []models.EventModel{
		{
			ID:            "e1",
			OwnerID:       "u1",
			Title:         "حفل زفاف أحمد وسارة",
			HostName:      "عائلة محمد",
			Type:          models.EventWedding,
			Date:          "2023-12-25",
			Time:          "19:00",
			Region:        models.RegionNorth,
			City:          "الناصرة",
			AddressText:   "قاعات الجليل",
			Latitude:      32.7,
			Longitude:     35.3,
			WazeURL:       "https://waze.com",
			Description:   "نتشرف بدعوتكم لحضور حفل زفافنا وتناول طعام العشاء.",
			CoverImageURL: "https://images.unsplash.com/photo-1519225468359-2996bc01c083?auto=format&fit=crop&q=80&w=800",
			TemplateType:  "luxury",
			IsPublic:      true,
			Attendees:     []models.RSVP{},
		},
	}
}

func SeedNotifications() []models.NotificationItem {
	now := time.Now()
	return []models.NotificationItem{
		{
			ID:        "1",
			Kind:      models.NotificationOffer,
			Title:     "عرض جديد",
			Message:   "خصم 15% على حفلات الزفاف في عطلة نهاية الأسبوع.",
			CreatedAt: now.Format(time.RFC3339),
			Read:      false,
			Category:  models.EventWedding,
		},
		{
			ID:        "2",
			Kind:      models.NotificationMessage,
			Title:     "رسالة جديدة",
			Message:   "مرحباً، متى يناسبك موعد جلسة تصوير الخطوبة؟",
			CreatedAt: now.Add(-time.Hour).Format(time.RFC3339),
			Read:      false,
			Category:  models.EventEngagement,
		},
	}
}

// SuggestedVendorIDs is the hand-curated suggestion index: occasion type to
// vendor ids, in curated order. Some entries reference the dress catalog and
// will not resolve against the vendor collection; lookups tolerate that.
var SuggestedVendorIDs = map[models.EventType][]string{
	models.EventWedding:    {"v1", "v2", "v3", "v7", "v8", "d10"},
	models.EventEngagement: {"v1", "v3", "v7", "d9"},
	models.EventBirthday:   {"v6", "v5", "v4"},
	models.EventGraduation: {"v3", "v5", "v6"},
	models.EventBaby:       {"v6", "v7"},
	models.EventCorporate:  {"v1", "v6"},
	models.EventOther:      {"v6"},
}
