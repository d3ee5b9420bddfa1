package algorithms

import (
	"sort"
	"strings"
	"time"

	"jobtrack/internal/models"
	"jobtrack/internal/navstate"
)

// Слои конвейера применяются в фиксированном порядке:
// поиск -> фильтр по статусу -> сортировка по дате.

// FilterJobs строит видимую упорядоченную часть коллекции по
// текущему навигационному состоянию. Входной слайс не меняется.
func FilterJobs(jobs []models.JobApplication, st navstate.State) []models.JobApplication {
	result := make([]models.JobApplication, 0, len(jobs))

	search := strings.ToLower(strings.TrimSpace(st.Search))
	for _, job := range jobs {
		if search != "" && !matchesSearch(&job, search) {
			continue
		}
		if st.Filter != navstate.FilterAll && string(job.Status) != string(st.Filter) {
			continue
		}
		result = append(result, job)
	}

	sortByDate(result, st.Sort)
	return result
}

// matchesSearch - регистронезависимое вхождение в company ИЛИ role.
func matchesSearch(job *models.JobApplication, search string) bool {
	return strings.Contains(strings.ToLower(job.Company), search) ||
		strings.Contains(strings.ToLower(job.Role), search)
}

type datedJob struct {
	job  models.JobApplication
	date time.Time
	ok   bool
}

// sortByDate сортирует по распарсенной дате отклика. Стабильная
// сортировка: равные даты сохраняют порядок хранилища. Записи с
// нераспознаваемой датой всегда идут после распознаваемых,
// независимо от направления.
func sortByDate(jobs []models.JobApplication, order navstate.SortOrder) {
	entries := make([]datedJob, len(jobs))
	for i := range jobs {
		t, ok := ParseDateApplied(jobs[i].DateApplied)
		entries[i] = datedJob{job: jobs[i], date: t, ok: ok}
	}

	sort.SliceStable(entries, func(a, b int) bool {
		ea, eb := entries[a], entries[b]
		if ea.ok != eb.ok {
			return ea.ok
		}
		if !ea.ok {
			return false
		}
		if order == navstate.SortAscending {
			return ea.date.Before(eb.date)
		}
		return ea.date.After(eb.date)
	})

	for i := range entries {
		jobs[i] = entries[i].job
	}
}

// ParseDateApplied парсит дату отклика: ISO-дата, затем RFC3339.
func ParseDateApplied(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}
