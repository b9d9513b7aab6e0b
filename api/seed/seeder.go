package seed

import (
	"errors"
	"log"

	"Pico/api/models"

	"gorm.io/gorm"
)

var candidates = []models.Candidate{
	{Name: "Haneul", Age: 27, MBTI: "ENFP", Bio: "Weekend hiker, weekday coffee snob."},
	{Name: "Jiwoo", Age: 25, MBTI: "ISTJ", Bio: "Board games and bad puns."},
	{Name: "Minseo", Age: 29, MBTI: "INFJ", Bio: "Film photography on slow Sundays."},
	{Name: "Doyun", Age: 31, MBTI: "ESTP", Bio: "Will cook for compliments."},
	{Name: "Seoyeon", Age: 26, MBTI: "ENTJ", Bio: "Marathon training, again."},
	{Name: "Junho", Age: 28, MBTI: "ISFP", Bio: "Plays guitar badly, sings worse."},
	{Name: "Yuna", Age: 24, MBTI: "ESFJ", Bio: "Knows every bakery in town."},
	{Name: "Taemin", Age: 30, MBTI: "INTP", Bio: "Builds keyboards nobody asked for."},
}

// Load inserts the demo candidate pool. Candidates already present by name are skipped.
func Load(db *gorm.DB) error {
	for i := range candidates {
		var existing models.Candidate
		err := db.Where("name = ?", candidates[i].Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		c := candidates[i]
		c.Active = true
		c.Prepare()
		if msgs := c.Validate(); len(msgs) > 0 {
			log.Printf("[seedCandidates] skip %q: %+v", c.Name, msgs)
			continue
		}
		if _, err := c.SaveCandidate(db); err != nil {
			return err
		}
		log.Printf("[seedCandidates] created %s", c.Name)
	}
	return nil
}
