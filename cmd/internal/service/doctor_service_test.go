package service

import (
	"net/http"
	"testing"
)

func doctorFixture() *DoctorRequest {
	return &DoctorRequest{
		Name:      "Dr. Smith",
		Email:     "smith@clinic.com",
		Specialty: "Oral Surgery",
		Slots:     []string{"08:00 AM - 09:00 AM", "09:00 AM - 10:00 AM"},
	}
}

func TestAddDoctor(t *testing.T) {
	repo := newMockDoctorRepo()
	svc := NewDoctorService(repo, newTestValidator())

	doctor, apierr := svc.AddDoctor(doctorFixture())
	if apierr != nil {
		t.Fatalf("add failed: %v", apierr)
	}
	if doctor.ID == "" {
		t.Error("expected a generated doctor id")
	}
	if len(repo.doctors) != 1 {
		t.Errorf("expected 1 stored doctor, got %d", len(repo.doctors))
	}
}

func TestAddDoctorRejectsBadSlot(t *testing.T) {
	svc := NewDoctorService(newMockDoctorRepo(), newTestValidator())

	req := doctorFixture()
	req.Slots = []string{"whenever"}
	_, apierr := svc.AddDoctor(req)
	if apierr == nil || apierr.Code() != http.StatusBadRequest {
		t.Errorf("expected 400 for a malformed slot label, got %v", apierr)
	}
}

func TestRemoveDoctor(t *testing.T) {
	repo := newMockDoctorRepo()
	svc := NewDoctorService(repo, newTestValidator())

	doctor, apierr := svc.AddDoctor(doctorFixture())
	if apierr != nil {
		t.Fatalf("add failed: %v", apierr)
	}

	if apierr := svc.RemoveDoctor(doctor.ID); apierr != nil {
		t.Fatalf("remove failed: %v", apierr)
	}

	apierr = svc.RemoveDoctor(doctor.ID)
	if apierr == nil || apierr.Code() != http.StatusNotFound {
		t.Errorf("expected 404 removing a gone doctor, got %v", apierr)
	}
}
