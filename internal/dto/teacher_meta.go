package dto

import "github.com/classpoint/classroom-api/internal/models"

// TeacherMetaDTO represents a teacher profile in API responses
type TeacherMetaDTO struct {
	ID           uint64   `json:"id"`
	UserID       uint64   `json:"user_id"`
	TagIDs       []uint64 `json:"tag_ids"`
	AboutTeacher string   `json:"about_teacher"`
	CanHelpWith  string   `json:"can_help_with"`
	Resume       string   `json:"resume"`
}

// TeacherSearchResultDTO is a search hit including the teacher's name
type TeacherSearchResultDTO struct {
	TeacherMetaDTO
	TeacherName    string `json:"teacher_name"`
	TeacherSurname string `json:"teacher_surname"`
}

// ToTeacherMetaDTO converts a profile to its API representation
func ToTeacherMetaDTO(meta models.TeacherMeta) TeacherMetaDTO {
	tagIDs := meta.TagIDs
	if tagIDs == nil {
		tagIDs = models.IDList{}
	}
	return TeacherMetaDTO{
		ID:           meta.ID,
		UserID:       meta.UserID,
		TagIDs:       tagIDs,
		AboutTeacher: meta.AboutTeacher,
		CanHelpWith:  meta.CanHelpWith,
		Resume:       meta.Resume,
	}
}

// ToTeacherSearchResultDTOs converts search hits with user details loaded
func ToTeacherSearchResultDTOs(metas []models.TeacherMeta) []TeacherSearchResultDTO {
	results := make([]TeacherSearchResultDTO, len(metas))
	for i, meta := range metas {
		results[i] = TeacherSearchResultDTO{
			TeacherMetaDTO: ToTeacherMetaDTO(meta),
			TeacherName:    meta.User.Name,
			TeacherSurname: meta.User.Surname,
		}
	}
	return results
}
