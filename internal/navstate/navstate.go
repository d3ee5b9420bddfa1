// Package navstate держит навигационное состояние страницы и его
// сериализацию в query-компонент URL. Адресная строка и состояние
// в памяти всегда согласованы: каждое действие отвечает редиректом
// на каноническую сериализацию нового состояния, а при загрузке
// состояние восстанавливается из текущего query string.
package navstate

import (
	"net/url"
	"strconv"

	"jobtrack/internal/models"
)

type Page string

const (
	PageLanding   Page = "landing"
	PageLogin     Page = "login"
	PageRegister  Page = "register"
	PageHome      Page = "home"
	PageJobDetail Page = "job-detail"
	PageNotFound  Page = "not-found"
)

// Valid сообщает, входит ли значение в множество известных страниц.
func (p Page) Valid() bool {
	switch p {
	case PageLanding, PageLogin, PageRegister, PageHome, PageJobDetail, PageNotFound:
		return true
	}
	return false
}

// Protected - страницы, требующие активной сессии.
func (p Page) Protected() bool {
	return p == PageHome || p == PageJobDetail
}

type SortOrder string

const (
	SortAscending  SortOrder = "ascending"
	SortDescending SortOrder = "descending" // default
)

// StatusFilter - "all" либо один из статусов отклика.
type StatusFilter string

const FilterAll StatusFilter = "all"

func (f StatusFilter) Valid() bool {
	return f == FilterAll || models.IsValidJobStatus(string(f))
}

// Ключи query-параметров. Ровно эти имена видны в адресной строке.
const (
	keyPage   = "page"
	keySearch = "search"
	keyFilter = "filter"
	keySort   = "sort"
	keyJobID  = "jobId"
)

// State - полное навигационное состояние.
type State struct {
	Page   Page
	Search string
	Filter StatusFilter
	Sort   SortOrder
	JobID  int64 // 0 = ничего не выбрано
}

// Default - состояние при первом заходе без параметров.
func Default() State {
	return State{
		Page:   PageLanding,
		Filter: FilterAll,
		Sort:   SortDescending,
	}
}

// Parse восстанавливает состояние из query-параметров.
// Отсутствующие ключи получают значения по умолчанию; неизвестное
// значение page дает PageNotFound, неизвестные filter/sort молча
// откатываются к значениям по умолчанию.
func Parse(q url.Values) State {
	st := Default()

	if raw := q.Get(keyPage); raw != "" {
		if p := Page(raw); p.Valid() {
			st.Page = p
		} else {
			st.Page = PageNotFound
		}
	}

	st.Search = q.Get(keySearch)

	if raw := q.Get(keyFilter); raw != "" {
		if f := StatusFilter(raw); f.Valid() {
			st.Filter = f
		}
	}

	if raw := q.Get(keySort); raw == string(SortAscending) {
		st.Sort = SortAscending
	}

	if raw := q.Get(keyJobID); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
			st.JobID = id
		}
	}

	return st
}

// Values сериализует состояние. Правила пропуска: page пишется
// всегда; search - только непустой; filter - только отличный от
// all; sort - только ascending; jobId - только выбранный.
func (s State) Values() url.Values {
	q := url.Values{}
	q.Set(keyPage, string(s.Page))

	if s.Search != "" {
		q.Set(keySearch, s.Search)
	}
	if s.Filter != "" && s.Filter != FilterAll {
		q.Set(keyFilter, string(s.Filter))
	}
	if s.Sort == SortAscending {
		q.Set(keySort, string(s.Sort))
	}
	if s.JobID > 0 {
		q.Set(keyJobID, strconv.FormatInt(s.JobID, 10))
	}

	return q
}

// Encode возвращает query string состояния.
func (s State) Encode() string {
	return s.Values().Encode()
}

// Path - адрес для редиректа на это состояние.
func (s State) Path() string {
	return "/?" + s.Encode()
}

// Partial - частичное обновление состояния. Нулевые указатели
// оставляют поле без изменений.
type Partial struct {
	Page   *Page
	Search *string
	Filter *StatusFilter
	Sort   *SortOrder
	JobID  *int64
}

// Merge накладывает частичное обновление и возвращает новое полное
// состояние. Исходное значение не меняется.
func (s State) Merge(p Partial) State {
	next := s
	if p.Page != nil {
		next.Page = *p.Page
	}
	if p.Search != nil {
		next.Search = *p.Search
	}
	if p.Filter != nil {
		next.Filter = *p.Filter
	}
	if p.Sort != nil {
		next.Sort = *p.Sort
	}
	if p.JobID != nil {
		next.JobID = *p.JobID
	}
	return next
}

// PagePtr и другие хелперы для построения Partial без локальных
// переменных в вызывающем коде.
func PagePtr(p Page) *Page                  { return &p }
func SearchPtr(s string) *string            { return &s }
func FilterPtr(f StatusFilter) *StatusFilter { return &f }
func SortPtr(o SortOrder) *SortOrder        { return &o }
func JobIDPtr(id int64) *int64              { return &id }
