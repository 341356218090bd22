package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"smileon/internal/domain"
	"smileon/internal/repository"
	"smileon/internal/storage"
)

const doctorPhotoFolder = "doctors"

type DoctorServiceImpl struct {
	doctorRepo  repository.DoctorRepository
	fileStorage storage.FileStorage
	logger      *zap.Logger
}

func NewDoctorService(doctorRepo repository.DoctorRepository, fileStorage storage.FileStorage, logger *zap.Logger) *DoctorServiceImpl {
	return &DoctorServiceImpl{
		doctorRepo:  doctorRepo,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

func (s *DoctorServiceImpl) Create(ctx context.Context, dto domain.CreateDoctorDTO) (int64, error) {
	id, err := s.doctorRepo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("failed to create doctor", zap.Error(err))
		return 0, errors.New("의료진 등록 중 오류가 발생했습니다")
	}
	return id, nil
}

func (s *DoctorServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Doctor, error) {
	doctor, err := s.doctorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errors.New("의료진을 찾을 수 없습니다")
		}
		s.logger.Error("failed to get doctor", zap.Int64("id", id), zap.Error(err))
		return nil, errors.New("의료진 조회 중 오류가 발생했습니다")
	}

	educations, err := s.doctorRepo.ListEducation(ctx, id)
	if err != nil {
		s.logger.Error("failed to list doctor education", zap.Int64("doctor_id", id), zap.Error(err))
		return nil, errors.New("의료진 조회 중 오류가 발생했습니다")
	}
	doctor.Educations = educations

	careers, err := s.doctorRepo.ListCareers(ctx, id)
	if err != nil {
		s.logger.Error("failed to list doctor careers", zap.Int64("doctor_id", id), zap.Error(err))
		return nil, errors.New("의료진 조회 중 오류가 발생했습니다")
	}
	doctor.Careers = careers

	return doctor, nil
}

func (s *DoctorServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateDoctorDTO) error {
	if err := s.doctorRepo.Update(ctx, id, dto); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errors.New("의료진을 찾을 수 없습니다")
		}
		s.logger.Error("failed to update doctor", zap.Int64("id", id), zap.Error(err))
		return errors.New("의료진 수정 중 오류가 발생했습니다")
	}
	return nil
}

func (s *DoctorServiceImpl) Delete(ctx context.Context, id int64) error {
	doctor, err := s.doctorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errors.New("의료진을 찾을 수 없습니다")
		}
		s.logger.Error("failed to get doctor", zap.Int64("id", id), zap.Error(err))
		return errors.New("의료진 삭제 중 오류가 발생했습니다")
	}

	if err := s.doctorRepo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete doctor", zap.Int64("id", id), zap.Error(err))
		return errors.New("의료진 삭제 중 오류가 발생했습니다")
	}

	if doctor.PhotoURL != "" && s.fileStorage != nil {
		if err := s.fileStorage.DeleteFile(ctx, doctor.PhotoURL); err != nil {
			s.logger.Warn("failed to delete doctor photo", zap.Int64("id", id), zap.Error(err))
		}
	}

	return nil
}

// List returns profiles in display order with education and career history
// attached; the roster is small enough to hydrate eagerly.
func (s *DoctorServiceImpl) List(ctx context.Context) ([]domain.Doctor, error) {
	doctors, err := s.doctorRepo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list doctors", zap.Error(err))
		return nil, errors.New("의료진 목록을 불러오지 못했습니다")
	}

	for i := range doctors {
		educations, err := s.doctorRepo.ListEducation(ctx, doctors[i].ID)
		if err != nil {
			s.logger.Error("failed to list doctor education", zap.Int64("doctor_id", doctors[i].ID), zap.Error(err))
			return nil, errors.New("의료진 목록을 불러오지 못했습니다")
		}
		doctors[i].Educations = educations

		careers, err := s.doctorRepo.ListCareers(ctx, doctors[i].ID)
		if err != nil {
			s.logger.Error("failed to list doctor careers", zap.Int64("doctor_id", doctors[i].ID), zap.Error(err))
			return nil, errors.New("의료진 목록을 불러오지 못했습니다")
		}
		doctors[i].Careers = careers
	}

	return doctors, nil
}

func (s *DoctorServiceImpl) UploadPhoto(ctx context.Context, doctorID int64, photo []byte, filename string) (string, error) {
	if s.fileStorage == nil {
		return "", errors.New("파일 저장소가 설정되어 있지 않습니다")
	}

	doctor, err := s.doctorRepo.GetByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", errors.New("의료진을 찾을 수 없습니다")
		}
		s.logger.Error("failed to get doctor", zap.Int64("id", doctorID), zap.Error(err))
		return "", errors.New("사진 업로드 중 오류가 발생했습니다")
	}

	url, err := s.fileStorage.UploadFile(ctx, photo, filename, doctorPhotoFolder)
	if err != nil {
		s.logger.Error("failed to upload doctor photo", zap.Int64("id", doctorID), zap.Error(err))
		return "", errors.New("사진 업로드 중 오류가 발생했습니다")
	}

	if err := s.doctorRepo.UpdatePhoto(ctx, doctorID, url); err != nil {
		s.logger.Error("failed to save doctor photo url", zap.Int64("id", doctorID), zap.Error(err))
		return "", errors.New("사진 업로드 중 오류가 발생했습니다")
	}

	if doctor.PhotoURL != "" {
		if err := s.fileStorage.DeleteFile(ctx, doctor.PhotoURL); err != nil {
			s.logger.Warn("failed to delete previous doctor photo", zap.Int64("id", doctorID), zap.Error(err))
		}
	}

	return url, nil
}

func (s *DoctorServiceImpl) DeletePhoto(ctx context.Context, doctorID int64) error {
	doctor, err := s.doctorRepo.GetByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errors.New("의료진을 찾을 수 없습니다")
		}
		s.logger.Error("failed to get doctor", zap.Int64("id", doctorID), zap.Error(err))
		return errors.New("사진 삭제 중 오류가 발생했습니다")
	}

	if doctor.PhotoURL == "" {
		return nil
	}

	if err := s.doctorRepo.UpdatePhoto(ctx, doctorID, ""); err != nil {
		s.logger.Error("failed to clear doctor photo url", zap.Int64("id", doctorID), zap.Error(err))
		return errors.New("사진 삭제 중 오류가 발생했습니다")
	}

	if s.fileStorage != nil {
		if err := s.fileStorage.DeleteFile(ctx, doctor.PhotoURL); err != nil {
			s.logger.Warn("failed to delete doctor photo object", zap.Int64("id", doctorID), zap.Error(err))
		}
	}

	return nil
}

func (s *DoctorServiceImpl) AddEducation(ctx context.Context, doctorID int64, dto domain.DoctorEducationDTO) (int64, error) {
	if _, err := s.doctorRepo.GetByID(ctx, doctorID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, errors.New("의료진을 찾을 수 없습니다")
		}
		s.logger.Error("failed to get doctor", zap.Int64("id", doctorID), zap.Error(err))
		return 0, errors.New("학력 등록 중 오류가 발생했습니다")
	}

	id, err := s.doctorRepo.AddEducation(ctx, doctorID, dto)
	if err != nil {
		s.logger.Error("failed to add doctor education", zap.Int64("doctor_id", doctorID), zap.Error(err))
		return 0, errors.New("학력 등록 중 오류가 발생했습니다")
	}
	return id, nil
}

func (s *DoctorServiceImpl) DeleteEducation(ctx context.Context, id int64) error {
	if err := s.doctorRepo.DeleteEducation(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errors.New("학력 정보를 찾을 수 없습니다")
		}
		s.logger.Error("failed to delete doctor education", zap.Int64("id", id), zap.Error(err))
		return errors.New("학력 삭제 중 오류가 발생했습니다")
	}
	return nil
}

func (s *DoctorServiceImpl) AddCareer(ctx context.Context, doctorID int64, dto domain.DoctorCareerDTO) (int64, error) {
	if _, err := s.doctorRepo.GetByID(ctx, doctorID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, errors.New("의료진을 찾을 수 없습니다")
		}
		s.logger.Error("failed to get doctor", zap.Int64("id", doctorID), zap.Error(err))
		return 0, errors.New("경력 등록 중 오류가 발생했습니다")
	}

	id, err := s.doctorRepo.AddCareer(ctx, doctorID, dto)
	if err != nil {
		s.logger.Error("failed to add doctor career", zap.Int64("doctor_id", doctorID), zap.Error(err))
		return 0, errors.New("경력 등록 중 오류가 발생했습니다")
	}
	return id, nil
}

func (s *DoctorServiceImpl) DeleteCareer(ctx context.Context, id int64) error {
	if err := s.doctorRepo.DeleteCareer(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errors.New("경력 정보를 찾을 수 없습니다")
		}
		s.logger.Error("failed to delete doctor career", zap.Int64("id", id), zap.Error(err))
		return errors.New("경력 삭제 중 오류가 발생했습니다")
	}
	return nil
}
