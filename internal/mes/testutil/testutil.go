package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
	"github.com/lks7470-gif/bt-admin/internal/mes/entity"
	"github.com/lks7470-gif/bt-admin/internal/middleware"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	TestSchema = "test_mes"
	JWTSecret  = "bt-admin-test-jwt-secret"
)

// projectRoot go.mod 가 있는 위치를 거슬러 올라가 찾는다
func projectRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

func loadEnv() {
	root := projectRoot()
	if root != "" {
		godotenv.Load(filepath.Join(root, ".env"))
	}
}

// SetupTestDB 테스트 전용 스키마를 만들어 격리된 DB 연결을 돌려준다.
// 스키마는 테스트 종료 시 삭제된다.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	loadEnv()

	host := getEnv("DB_HOST", "127.0.0.1")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "mes")
	password := getEnv("DB_PASSWORD", "mes123")
	dbname := getEnv("DB_NAME", "bt_admin")

	baseDSN := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	schemaName := fmt.Sprintf("%s_%d", TestSchema, time.Now().UnixNano()%1000000)

	setupDB, err := gorm.Open(postgres.Open(baseDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to database for schema setup: %v", err)
	}
	setupDB.Exec(fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", schemaName))
	sqlSetup, _ := setupDB.DB()
	sqlSetup.Close()

	// search_path 를 DSN 에 넣어야 풀의 모든 커넥션이 테스트 스키마를 쓴다
	testDSN := fmt.Sprintf("%s search_path=%s", baseDSN, schemaName)
	db, err := gorm.Open(postgres.Open(testDSN), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	err = db.AutoMigrate(
		&entity.WorkOrder{},
		&entity.ProductionLog{},
		&entity.DefectRecord{},
		&entity.FabricRoll{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test tables: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		cleanDB, cleanErr := gorm.Open(postgres.Open(baseDSN), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if cleanErr == nil {
			cleanDB.Exec(fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schemaName))
			sqlClean, _ := cleanDB.DB()
			if sqlClean != nil {
				sqlClean.Close()
			}
		}
	})

	return db
}

// SetupRouter 테스트용 gin 라우터
func SetupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())
	return r
}

// AuthGroup JWT 인증이 걸린 테스트용 API 그룹
func AuthGroup(r *gin.Engine, path string) *gin.RouterGroup {
	return r.Group(path, middleware.JWTAuth(JWTSecret))
}

// GenerateTestToken 테스트용 JWT 발급
func GenerateTestToken(role, worker string) string {
	now := time.Now()
	claims := middleware.JWTClaims{
		Role:   role,
		Worker: worker,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "bt-admin",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
			ID:        fmt.Sprintf("test-jti-%d", now.UnixNano()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, _ := token.SignedString([]byte(JWTSecret))
	return tokenString
}

// AdminToken 관리자 역할 토큰
func AdminToken() string {
	return GenerateTestToken("admin", "관리자")
}

// WorkerToken 작업자 역할 토큰
func WorkerToken(worker string) string {
	return GenerateTestToken("worker", worker)
}

// DoRequest 테스트 라우터에 HTTP 요청 실행
func DoRequest(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ParseResponse 응답 JSON 을 map 으로 파싱
func ParseResponse(w *httptest.ResponseRecorder) map[string]interface{} {
	var result map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}

// SeedWorkOrder 테스트용 작업 지시서 생성
func SeedWorkOrder(t *testing.T, db *gorm.DB, lotNo, status string, lamination *string) *entity.WorkOrder {
	t.Helper()
	now := time.Now()
	order := &entity.WorkOrder{
		LotNo:          lotNo,
		Customer:       "테스트 고객사",
		Product:        "스마트글라스",
		WidthMM:        600,
		HeightMM:       900,
		ElectrodeSpec:  "표준 전극",
		CuttingSpec:    "표준 재단",
		LaminationSpec: lamination,
		Status:         status,
		CreatedBy:      "관리자",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("Failed to seed work order: %v", err)
	}
	return order
}

// SeedFabricRoll 테스트용 원단 롤 생성
func SeedFabricRoll(t *testing.T, db *gorm.DB, lotNo string, totalLen float64) *entity.FabricRoll {
	t.Helper()
	now := time.Now()
	roll := &entity.FabricRoll{
		LotNo:     lotNo,
		WidthMM:   1200,
		TotalLen:  totalLen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.Create(roll).Error; err != nil {
		t.Fatalf("Failed to seed fabric roll: %v", err)
	}
	return roll
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
