package utility

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	salt, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt lỗi: %v", err)
	}
	if salt == "" {
		t.Fatal("Salt không được rỗng")
	}

	hash := HashPassword("S3cret!pass", salt)
	if hash == "" {
		t.Fatal("Hash không được rỗng")
	}

	if !VerifyPassword("S3cret!pass", salt, hash) {
		t.Error("Mật khẩu đúng phải verify thành công")
	}
	if VerifyPassword("wrong-pass", salt, hash) {
		t.Error("Mật khẩu sai phải verify thất bại")
	}

	// Cùng mật khẩu, salt khác phải cho hash khác
	salt2, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt lỗi: %v", err)
	}
	if HashPassword("S3cret!pass", salt2) == hash {
		t.Error("Salt khác phải cho hash khác")
	}
}
