package course

type Modality string

const (
	ModalityOnline   Modality = "online"
	ModalityInPerson Modality = "in-person"
	ModalityHybrid   Modality = "hybrid"
)

func (m Modality) String() string {
	return string(m)
}

func (m Modality) IsValid() bool {
	switch m {
	case ModalityOnline, ModalityInPerson, ModalityHybrid:
		return true
	default:
		return false
	}
}
