package service

import (
	"math"
	"slices"
	"time"

	"vulearn/internal/api/v1/dto"
	"vulearn/internal/model"
)

const (
	defaultCourseDescription = "Premium curriculum crafted for ambitious course creators."
	defaultThumbnailColor    = "from-purple-500 via-fuchsia-500 to-orange-400"
	defaultCurrency          = "USD"
	defaultLanguage          = "English"

	defaultInstructorID     = "instructor"
	defaultInstructorName   = "Instructor"
	defaultInstructorTitle  = "Course Instructor"
	defaultInstructorAvatar = "/images/instructors/amelia.svg"
	defaultInstructorBio    = "Helping thousands of builders ship video learning experiences."

	fallbackRating      = 4.8
	fallbackRatingCount = 1850
	fallbackStudents    = 52000
	fallbackPrice       = 19.99

	// isoMillis matches the millisecond UTC timestamps the backend emits.
	isoMillis = "2006-01-02T15:04:05.000Z07:00"
)

var (
	defaultHighlights = []string{
		"Hands-on curriculum",
		"Downloadable resources",
		"Career-ready projects",
	}
	defaultWhatYouWillLearn = []string{
		"Ship a video learning MVP",
		"Model courses, lessons, and enrollments",
		"Design dashboards learners love",
	}
	defaultRequirements = []string{
		"Basic JavaScript knowledge",
		"Curiosity to learn",
	}
)

func deref[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

// metric treats a missing or zero value as absent.
func metric(n *dto.Number, fallback float64) float64 {
	if n == nil || n.Float() == 0 || math.IsNaN(n.Float()) {
		return fallback
	}
	return n.Float()
}

func firstList(lists ...[]string) []string {
	for _, l := range lists {
		if l != nil {
			return slices.Clone(l)
		}
	}
	return nil
}

func isoTime(t time.Time) string {
	return t.UTC().Format(isoMillis)
}

// TransformCourse resolves every optional field of a backend course into the
// catalog view.
func TransformCourse(c dto.CourseDTO, now time.Time) model.Course {
	var meta dto.CourseMetadataDTO
	if c.Metadata != nil {
		meta = *c.Metadata
	}

	tags := slices.Clone(c.Tags)
	if tags == nil {
		tags = []string{}
	}

	thumbnailColor := defaultThumbnailColor
	if c.ThumbnailURL != nil && *c.ThumbnailURL != "" {
		thumbnailColor = *c.ThumbnailURL
	}

	course := model.Course{
		ID:               c.ID,
		Title:            c.Title,
		Slug:             c.Slug,
		Description:      deref(c.Description, defaultCourseDescription),
		Level:            model.CourseLevel(c.Level),
		IsPublished:      c.IsPublished,
		DurationMinutes:  c.DurationMinutes.Int(),
		Rating:           metric(meta.Rating, fallbackRating),
		RatingCount:      int(metric(meta.RatingCount, fallbackRatingCount)),
		Students:         int(metric(meta.Students, fallbackStudents)),
		Price:            metric(meta.Price, fallbackPrice),
		Currency:         defaultCurrency,
		Language:         meta.Language.Or(defaultLanguage),
		Tags:             tags,
		Categories:       slices.Clone(tags),
		ThumbnailURL:     c.ThumbnailURL,
		ThumbnailColor:   thumbnailColor,
		UpdatedAt:        meta.UpdatedAt.Or(isoTime(now)),
		Instructor:       transformInstructor(c.Instructor, meta),
		Highlights:       firstList(meta.Highlights, defaultHighlights),
		WhatYouWillLearn: firstList(c.WhatYouWillLearn, meta.WhatYouWillLearn, defaultWhatYouWillLearn),
		Requirements:     firstList(meta.Requirements, defaultRequirements),
		Modules:          make([]model.CourseModule, 0, len(c.Modules)),
		Lessons:          make([]model.Lesson, 0, len(c.Lessons)),
	}
	for _, m := range c.Modules {
		course.Modules = append(course.Modules, transformModule(m, now))
	}
	for _, l := range c.Lessons {
		course.Lessons = append(course.Lessons, TransformLesson(l, now))
	}
	return course
}

func transformInstructor(in *dto.InstructorDTO, meta dto.CourseMetadataDTO) model.Instructor {
	if in == nil {
		in = &dto.InstructorDTO{ID: defaultInstructorID}
	}
	name := defaultInstructorName
	if in.Name != nil {
		name = *in.Name
	} else if in.FullName != nil {
		name = *in.FullName
	}
	title := defaultInstructorTitle
	if meta.InstructorTitle != nil {
		title = meta.InstructorTitle.Or(title)
	} else if in.Bio != nil {
		title = *in.Bio
	}
	var students, reviews int
	if meta.InstructorStudents != nil {
		students = meta.InstructorStudents.Int()
	}
	if meta.InstructorReviews != nil {
		reviews = meta.InstructorReviews.Int()
	}
	return model.Instructor{
		ID:        in.ID,
		Name:      name,
		Title:     title,
		AvatarURL: deref(in.AvatarURL, defaultInstructorAvatar),
		Bio:       deref(in.Bio, defaultInstructorBio),
		Students:  students,
		Reviews:   reviews,
	}
}

func transformModule(m dto.ModuleDTO, now time.Time) model.CourseModule {
	lessons := make([]model.Lesson, 0, len(m.Lessons))
	for _, l := range m.Lessons {
		lessons = append(lessons, TransformLesson(l, now))
	}
	return model.CourseModule{
		ID:          m.ID,
		Title:       m.Title,
		Description: deref(m.Description, ""),
		Lessons:     lessons,
	}
}

// timestamps fills createdAt with now and updatedAt with createdAt.
func timestamps(created, updated *time.Time, now time.Time) (time.Time, time.Time) {
	c := deref(created, now)
	return c, deref(updated, c)
}

func TransformLesson(l dto.LessonDTO, now time.Time) model.Lesson {
	created, updated := timestamps(l.CreatedAt, l.UpdatedAt, now)
	return model.Lesson{
		ID:              l.ID,
		Title:           l.Title,
		DurationMinutes: deref(l.DurationMinutes, 0).Int(),
		IsPreview:       deref(l.IsPreview, false),
		VideoStatus:     model.VideoStatus(l.VideoStatus),
		Order:           deref(l.Order, 0),
		CourseID:        l.CourseID,
		ModuleID:        l.ModuleID,
		CreatedAt:       created,
		UpdatedAt:       updated,
		VideoURL:        l.VideoURL,
		Content:         l.Content,
	}
}

func TransformQuiz(q dto.QuizDTO, now time.Time) model.Quiz {
	created, updated := timestamps(q.CreatedAt, q.UpdatedAt, now)
	quiz := model.Quiz{
		ID:               q.ID,
		Title:            q.Title,
		Description:      q.Description,
		CourseID:         q.CourseID,
		LessonID:         q.LessonID,
		TimeLimitSeconds: q.TimeLimitSeconds,
		IsPublished:      deref(q.IsPublished, false),
		Order:            deref(q.Order, 0),
		CreatedAt:        created,
		UpdatedAt:        updated,
	}
	if q.Questions != nil {
		quiz.Questions = make([]model.QuizQuestion, 0, len(q.Questions))
		for _, qq := range q.Questions {
			options := make([]model.QuizOption, 0, len(qq.Options))
			for _, o := range qq.Options {
				options = append(options, model.QuizOption{
					ID:          o.ID,
					Label:       o.Label,
					IsCorrect:   o.IsCorrect,
					Explanation: o.Explanation,
				})
			}
			quiz.Questions = append(quiz.Questions, model.QuizQuestion{
				ID:      qq.ID,
				Prompt:  qq.Prompt,
				Points:  qq.Points,
				Order:   qq.Order,
				Options: options,
			})
		}
	}
	return quiz
}

func transformEnrollment(e dto.EnrollmentDTO) model.Enrollment {
	return model.Enrollment{
		ID:                 e.ID,
		CourseID:           e.CourseID,
		UserID:             e.UserID,
		ProgressPercent:    int(math.Round(e.ProgressPercent.Float())),
		LastAccessed:       e.LastAccessed,
		CompletedLessonIDs: slices.Clone(e.CompletedLessonIDs),
	}
}

func transformAuthor(a *dto.AuthorDTO) model.Author {
	if a == nil {
		return model.Author{}
	}
	name := deref(a.FullName, "")
	if name == "" {
		name = deref(a.Name, "")
	}
	return model.Author{
		ID:        a.ID,
		Name:      name,
		Email:     deref(a.Email, ""),
		AvatarURL: deref(a.AvatarURL, ""),
	}
}

func transformReview(r dto.ReviewDTO) model.Review {
	review := model.Review{
		ID:        r.ID,
		CourseID:  r.CourseID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		Author:    transformAuthor(r.User),
		CreatedAt: r.CreatedAt,
	}
	if r.Course != nil {
		review.CourseTitle = r.Course.Title
	}
	return review
}

func transformComment(c dto.CommentDTO) model.Comment {
	comment := model.Comment{
		ID:        c.ID,
		LessonID:  c.LessonID,
		UserID:    c.UserID,
		ParentID:  c.ParentID,
		Content:   c.Content,
		Author:    transformAuthor(c.User),
		CreatedAt: c.CreatedAt,
	}
	for _, r := range c.Replies {
		comment.Replies = append(comment.Replies, transformComment(r))
	}
	return comment
}

func transformWishlistItem(w dto.WishlistItemDTO, now time.Time) model.WishlistItem {
	item := model.WishlistItem{
		ID:        w.ID,
		UserID:    w.UserID,
		CourseID:  w.CourseID,
		CreatedAt: w.CreatedAt,
	}
	if w.Course != nil {
		c := TransformCourse(*w.Course, now)
		item.Course = &c
	}
	return item
}

func transformPayment(p dto.PaymentDTO) model.Payment {
	return model.Payment{
		ID:          p.ID,
		Amount:      p.Amount.Float(),
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		CourseID:    p.Course.ID,
		CourseTitle: p.Course.Title,
	}
}

func transformSessionUser(u dto.SessionUserDTO) model.User {
	name := deref(u.Name, "")
	if name == "" {
		name = deref(u.FullName, "")
	}
	return model.User{
		UserID:    u.ID,
		Name:      name,
		Email:     u.Email,
		Role:      model.UserRole(u.Role),
		AvatarURL: deref(u.AvatarURL, ""),
		Bio:       deref(u.Bio, ""),
		IsActive:  true,
	}
}

func transformAdminUser(u dto.AdminUserDTO) model.User {
	return model.User{
		UserID:    u.ID,
		Name:      u.FullName,
		Email:     u.Email,
		Role:      model.UserRole(u.Role),
		AvatarURL: deref(u.AvatarURL, ""),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func transformAdminCourse(c dto.AdminCourseDTO) model.AdminCourse {
	return model.AdminCourse{
		ID:              c.ID,
		Title:           c.Title,
		Slug:            c.Slug,
		IsPublished:     c.IsPublished,
		IsFeatured:      c.IsFeatured,
		CreatedAt:       c.CreatedAt,
		InstructorID:    c.Instructor.ID,
		InstructorName:  deref(c.Instructor.FullName, ""),
		InstructorEmail: c.Instructor.Email,
		Rating:          c.Rating.Float(),
		RatingCount:     c.RatingCount.Int(),
	}
}

func transformOverview(o dto.StatisticsOverviewDTO) model.StatisticsOverview {
	out := model.StatisticsOverview{
		TotalUsers:        o.Overview.TotalUsers.Int(),
		TotalCourses:      o.Overview.TotalCourses.Int(),
		TotalEnrollments:  o.Overview.TotalEnrollments.Int(),
		RecentEnrollments: make([]model.DailyEnrollments, 0, len(o.RecentEnrollments)),
	}
	for _, r := range o.RecentEnrollments {
		out.RecentEnrollments = append(out.RecentEnrollments, model.DailyEnrollments{Date: r.Date, Count: r.Count.Int()})
	}
	return out
}
