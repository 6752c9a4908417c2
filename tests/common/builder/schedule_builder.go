//go:build unit || e2e

package builder

import (
	reqdto "basecampus-api/internal/handler/dto/request"
	"basecampus-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ScheduleBuilder struct {
	CourseID uuid.UUID
	RoomID   *uuid.UUID
	Dates    []string
	Start    string
	End      string
}

func NewScheduleBuilder() *ScheduleBuilder {
	return &ScheduleBuilder{
		CourseID: uuid.New(),
		Dates:    []string{"2025-06-01", "2025-06-08", "2025-06-15"},
		Start:    "09:00",
		End:      "10:30",
	}
}

func (s *ScheduleBuilder) With(mutate func(*ScheduleBuilder)) *ScheduleBuilder {
	mutate(s)
	return s
}

func (s *ScheduleBuilder) buildInputs() []reqdto.SessionInput {
	inputs := make([]reqdto.SessionInput, 0, len(s.Dates))
	for _, date := range s.Dates {
		inputs = append(inputs, reqdto.SessionInput{
			Date:      date,
			StartTime: s.Start,
			EndTime:   s.End,
			RoomID:    s.RoomID,
		})
	}
	return inputs
}

func (s *ScheduleBuilder) BuildReplaceRequestDTO() reqdto.ReplaceScheduleRequest {
	return reqdto.ReplaceScheduleRequest{Sessions: s.buildInputs()}
}

func (s *ScheduleBuilder) BuildAddRequestDTO() reqdto.AddSessionsRequest {
	return reqdto.AddSessionsRequest{Sessions: s.buildInputs()}
}

func (s *ScheduleBuilder) BuildSessionRMs() []*readmodel.SessionRM {
	rms := make([]*readmodel.SessionRM, 0, len(s.Dates))
	for _, date := range s.Dates {
		rms = append(rms, &readmodel.SessionRM{
			BookingID: uuid.New(),
			Date:      date,
			StartTime: s.Start,
			EndTime:   s.End,
			RoomID:    s.RoomID,
			Status:    "pending",
		})
	}
	return rms
}
