package scaffold

var fastapiFiles = []FileSpec{
	{
		Path: "README.md",
		Template: `# {{ .Name }}

{{ .Description }}

## Development

` + "```bash" + `
python -m venv .venv
source .venv/bin/activate
pip install -r requirements.txt
uvicorn app.main:app --reload
` + "```" + `

## Migrations

` + "```bash" + `
alembic upgrade head
` + "```" + `
`,
	},
	{
		Path: "requirements.txt",
		Template: `fastapi>=0.115
uvicorn[standard]>=0.32
sqlalchemy>=2.0
alembic>=1.14
pydantic-settings>=2.6
`,
	},
	{
		Path: "app/__init__.py",
		Template: `"""{{ .Name }} application package."""
`,
	},
	{
		Path: "app/main.py",
		Template: `from fastapi import FastAPI

from app.api.routes import router
from app.config import settings

app = FastAPI(title="{{ .Name }}", description="{{ .Description }}")
app.include_router(router, prefix=settings.api_prefix)


@app.get("/healthz")
def healthz() -> dict:
    return {"status": "ok"}
`,
	},
	{
		Path: "app/config.py",
		Template: `from pydantic_settings import BaseSettings


class Settings(BaseSettings):
    api_prefix: str = "/api/v1"
    database_url: str = "sqlite:///./{{ .Name }}.db"

    class Config:
        env_file = ".env"


settings = Settings()
`,
	},
	{
		Path: "app/api/__init__.py",
		Template: `"""API routers."""
`,
	},
	{
		Path: "app/api/routes.py",
		Template: `from fastapi import APIRouter

router = APIRouter()


@router.get("/items")
def list_items() -> list:
    return []
`,
	},
	{
		Path: "app/models.py",
		Template: `from sqlalchemy.orm import DeclarativeBase


class Base(DeclarativeBase):
    pass
`,
	},
	{
		Path: "alembic.ini",
		Template: `[alembic]
script_location = migrations
sqlalchemy.url = sqlite:///./{{ .Name }}.db

[loggers]
keys = root

[handlers]
keys = console

[formatters]
keys = generic

[logger_root]
level = WARN
handlers = console

[handler_console]
class = StreamHandler
args = (sys.stderr,)
level = NOTSET
formatter = generic

[formatter_generic]
format = %(levelname)-5.5s [%(name)s] %(message)s
`,
	},
	{
		Path: ".env.example",
		Template: `DATABASE_URL=sqlite:///./{{ .Name }}.db
`,
	},
	{
		Path: ".gitignore",
		Template: `.venv/
__pycache__/
*.pyc
.env
*.db
`,
	},
	{
		Path: "tests/__init__.py",
		Template: ``,
	},
	{
		Path: "tests/test_healthz.py",
		Template: `from fastapi.testclient import TestClient

from app.main import app

client = TestClient(app)


def test_healthz():
    response = client.get("/healthz")
    assert response.status_code == 200
    assert response.json() == {"status": "ok"}
`,
	},
}
